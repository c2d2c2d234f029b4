package attendance

import "github.com/frahmantamala/attendance-system/internal/transport"

type ServiceAPI = transport.CRUDService[CreateAttendanceRequest, UpdateAttendanceRequest, AttendanceResponse]

type Handler = transport.CRUDHandler[CreateAttendanceRequest, UpdateAttendanceRequest, AttendanceResponse]

func NewHandler(baseHandler *transport.BaseHandler, service ServiceAPI) *Handler {
	return transport.NewCRUDHandler(baseHandler, service, "attendance", "attendances")
}
