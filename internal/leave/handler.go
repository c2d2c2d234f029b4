package leave

import "github.com/frahmantamala/attendance-system/internal/transport"

type ServiceAPI = transport.CRUDService[CreateLeaveRequest, UpdateLeaveRequest, LeaveResponse]

type Handler = transport.CRUDHandler[CreateLeaveRequest, UpdateLeaveRequest, LeaveResponse]

func NewHandler(baseHandler *transport.BaseHandler, service ServiceAPI) *Handler {
	return transport.NewCRUDHandler(baseHandler, service, "leave", "leaves")
}
