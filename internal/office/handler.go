package office

import "github.com/frahmantamala/attendance-system/internal/transport"

type ServiceAPI = transport.CRUDService[CreateOfficeRequest, UpdateOfficeRequest, OfficeResponse]

type Handler = transport.CRUDHandler[CreateOfficeRequest, UpdateOfficeRequest, OfficeResponse]

func NewHandler(baseHandler *transport.BaseHandler, service ServiceAPI) *Handler {
	return transport.NewCRUDHandler(baseHandler, service, "office", "offices")
}
