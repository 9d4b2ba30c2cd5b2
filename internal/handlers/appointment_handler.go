package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-agenda/internal/dto"
	"github.com/BruksfildServices01/salon-agenda/internal/httperr"
	"github.com/BruksfildServices01/salon-agenda/internal/httpresp"
	ucAppointment "github.com/BruksfildServices01/salon-agenda/internal/usecase/appointment"
)

type AppointmentHandler struct {
	createUC *ucAppointment.CreateAppointment
	listUC   *ucAppointment.ListAppointmentsByMonth
	log      *zap.Logger
}

func NewAppointmentHandler(
	createUC *ucAppointment.CreateAppointment,
	listUC *ucAppointment.ListAppointmentsByMonth,
	log *zap.Logger,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC: createUC,
		listUC:   listUC,
		log:      log,
	}
}

// ======================================================
// CREATE
// ======================================================
func (h *AppointmentHandler) Create(c *gin.Context) {
	var req dto.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Invalid request body")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		Day:        req.Day,
		Time:       req.Time,
		Duration:   int(req.Duration),
		Location:   req.Location,
		ClientID:   req.Client.ID,
		ClientName: req.Client.Name,
		Note:       req.Note,
	})
	if err != nil {
		writeFailure(c, h.log, "[POST /api/appointments]", err, "Failed to create appointment")
		return
	}
	httpresp.Created(c, ap)
}

// ======================================================
// LIST (?month=YYYY-MM)
// ======================================================
func (h *AppointmentHandler) List(c *gin.Context) {
	appointments, err := h.listUC.Execute(c.Request.Context(), c.Query("month"))
	if err != nil {
		writeFailure(c, h.log, "[GET /api/appointments]", err, "Failed to list appointments")
		return
	}
	httpresp.List(c, appointments)
}
