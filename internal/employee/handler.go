package employee

import "github.com/frahmantamala/attendance-system/internal/transport"

type ServiceAPI = transport.CRUDService[CreateEmployeeRequest, UpdateEmployeeRequest, EmployeeResponse]

type Handler = transport.CRUDHandler[CreateEmployeeRequest, UpdateEmployeeRequest, EmployeeResponse]

func NewHandler(baseHandler *transport.BaseHandler, service ServiceAPI) *Handler {
	return transport.NewCRUDHandler(baseHandler, service, "employee", "employees")
}
