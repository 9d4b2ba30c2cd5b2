package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-agenda/internal/dto"
	"github.com/BruksfildServices01/salon-agenda/internal/httperr"
	"github.com/BruksfildServices01/salon-agenda/internal/httpresp"
	ucClient "github.com/BruksfildServices01/salon-agenda/internal/usecase/client"
)

type ClientHandler struct {
	listUC   *ucClient.ListClients
	getUC    *ucClient.GetClient
	createUC *ucClient.CreateClient
	updateUC *ucClient.UpdateClient
	log      *zap.Logger
}

func NewClientHandler(
	listUC *ucClient.ListClients,
	getUC *ucClient.GetClient,
	createUC *ucClient.CreateClient,
	updateUC *ucClient.UpdateClient,
	log *zap.Logger,
) *ClientHandler {
	return &ClientHandler{
		listUC:   listUC,
		getUC:    getUC,
		createUC: createUC,
		updateUC: updateUC,
		log:      log,
	}
}

// ======================================================
// LIST
// ======================================================
func (h *ClientHandler) List(c *gin.Context) {
	clients, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		writeFailure(c, h.log, "[GET /api/clients]", err, "Failed to list clients")
		return
	}
	httpresp.List(c, clients)
}

// ======================================================
// GET
// ======================================================
func (h *ClientHandler) Get(c *gin.Context) {
	client, err := h.getUC.Execute(c.Request.Context(), c.Param("id"))
	if httperr.IsNotFound(err) {
		httperr.NotFound(c, "Client not found")
		return
	}
	if err != nil {
		writeFailure(c, h.log, "[GET /api/clients/:id]", err, "Failed to get client")
		return
	}
	httpresp.OK(c, client)
}

// ======================================================
// CREATE
// ======================================================
func (h *ClientHandler) Create(c *gin.Context) {
	var req dto.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Invalid request body")
		return
	}

	client, err := h.createUC.Execute(c.Request.Context(), ucClient.CreateClientInput{
		Nome:             req.Nome,
		Cognome:          req.Cognome,
		DataDiNascita:    req.DataDiNascita,
		NumeroDiTelefono: req.NumeroDiTelefono,
		Email:            req.Email,
	})
	if err != nil {
		writeFailure(c, h.log, "[POST /api/clients]", err, "Failed to create client")
		return
	}
	httpresp.Created(c, client)
}

// ======================================================
// UPDATE (partial)
// ======================================================
func (h *ClientHandler) Update(c *gin.Context) {
	var req dto.UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Invalid request body")
		return
	}

	client, err := h.updateUC.Execute(c.Request.Context(), c.Param("id"), req.Patch())
	if httperr.IsNotFound(err) {
		httperr.NotFound(c, "Client not found")
		return
	}
	if err != nil {
		writeFailure(c, h.log, "[PUT /api/clients/:id]", err, "Failed to update client")
		return
	}
	httpresp.OK(c, client)
}
