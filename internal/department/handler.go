package department

import "github.com/frahmantamala/attendance-system/internal/transport"

type ServiceAPI = transport.CRUDService[CreateDepartmentRequest, UpdateDepartmentRequest, DepartmentResponse]

type Handler = transport.CRUDHandler[CreateDepartmentRequest, UpdateDepartmentRequest, DepartmentResponse]

func NewHandler(baseHandler *transport.BaseHandler, service ServiceAPI) *Handler {
	return transport.NewCRUDHandler(baseHandler, service, "department", "departments")
}
