package employeeleave

import "github.com/frahmantamala/attendance-system/internal/transport"

type ServiceAPI = transport.CRUDService[CreateEmployeeLeaveRequest, UpdateEmployeeLeaveRequest, EmployeeLeaveResponse]

type Handler = transport.CRUDHandler[CreateEmployeeLeaveRequest, UpdateEmployeeLeaveRequest, EmployeeLeaveResponse]

func NewHandler(baseHandler *transport.BaseHandler, service ServiceAPI) *Handler {
	return transport.NewCRUDHandler(baseHandler, service, "employee leave", "employee leaves")
}
