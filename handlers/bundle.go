package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Quote wizard endpoints
	OpenSession     gin.HandlerFunc
	GetSession      gin.HandlerFunc
	CloseSession    gin.HandlerFunc
	ReloadReference gin.HandlerFunc
	UpdateDraft     gin.HandlerFunc
	UpdateContact   gin.HandlerFunc
	ToggleEquipment gin.HandlerFunc
	ToggleService   gin.HandlerFunc
	Advance         gin.HandlerFunc
	Retreat         gin.HandlerFunc
	GoTo            gin.HandlerFunc
	Reset           gin.HandlerFunc
	Summary         gin.HandlerFunc
	Submit          gin.HandlerFunc
	ListSteps       gin.HandlerFunc

	Health gin.HandlerFunc
}

// NewHandlerBundle wires the quote handler's methods into a bundle.
func NewHandlerBundle(qh *QuoteHandler) *HandlerBundle {
	return &HandlerBundle{
		OpenSession:     qh.OpenSession,
		GetSession:      qh.GetSession,
		CloseSession:    qh.CloseSession,
		ReloadReference: qh.ReloadReference,
		UpdateDraft:     qh.UpdateDraft,
		UpdateContact:   qh.UpdateContact,
		ToggleEquipment: qh.ToggleEquipment,
		ToggleService:   qh.ToggleService,
		Advance:         qh.Advance,
		Retreat:         qh.Retreat,
		GoTo:            qh.GoTo,
		Reset:           qh.Reset,
		Summary:         qh.Summary,
		Submit:          qh.Submit,
		ListSteps:       qh.ListSteps,
		Health:          HealthHandler,
	}
}
