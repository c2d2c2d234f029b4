package person

import "github.com/frahmantamala/attendance-system/internal/transport"

type ServiceAPI = transport.CRUDService[CreatePersonRequest, UpdatePersonRequest, PersonResponse]

type Handler = transport.CRUDHandler[CreatePersonRequest, UpdatePersonRequest, PersonResponse]

func NewHandler(baseHandler *transport.BaseHandler, service ServiceAPI) *Handler {
	return transport.NewCRUDHandler(baseHandler, service, "person", "people")
}
