package employeeattendance

import "github.com/frahmantamala/attendance-system/internal/transport"

type ServiceAPI = transport.CRUDService[CreateEmployeeAttendanceRequest, UpdateEmployeeAttendanceRequest, EmployeeAttendanceResponse]

type Handler = transport.CRUDHandler[CreateEmployeeAttendanceRequest, UpdateEmployeeAttendanceRequest, EmployeeAttendanceResponse]

func NewHandler(baseHandler *transport.BaseHandler, service ServiceAPI) *Handler {
	return transport.NewCRUDHandler(baseHandler, service, "employee attendance", "employee attendances")
}
