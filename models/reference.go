package models

// EventType is an entry of the event type catalog (tipo_evento).
type EventType struct {
	ID          string  `json:"id"`
	Name        string  `json:"nome"`
	Description string  `json:"descricao,omitempty"`
	Icon        string  `json:"icone,omitempty"`
	BasePrice   float64 `json:"preco_base,omitempty"`
}

// Equipment is an entry of the equipment catalog (equipamentos).
type Equipment struct {
	ID          string `json:"id"`
	Name        string `json:"nome"`
	Description string `json:"descricao,omitempty"`
	Image       string `json:"imagem,omitempty"`
	AgeRange    string `json:"faixa_etaria,omitempty"`
	Capacity    string `json:"capacidade,omitempty"`
}

// AdditionalService is an entry of the optional services catalog (servicos_adicionais).
type AdditionalService struct {
	ID          string `json:"id"`
	Name        string `json:"nome"`
	Description string `json:"descricao,omitempty"`
}

// ReferenceDataSet bundles the read-only catalogs one wizard session works against.
// Collections that failed to load are empty, never nil.
type ReferenceDataSet struct {
	EventTypes []EventType         `json:"eventTypes"`
	Equipment  []Equipment         `json:"equipment"`
	Services   []AdditionalService `json:"services"`
}

// NewReferenceDataSet returns a data set with empty collections.
func NewReferenceDataSet() ReferenceDataSet {
	return ReferenceDataSet{
		EventTypes: []EventType{},
		Equipment:  []Equipment{},
		Services:   []AdditionalService{},
	}
}

func (r ReferenceDataSet) EventType(id string) (EventType, bool) {
	for _, et := range r.EventTypes {
		if et.ID == id {
			return et, true
		}
	}
	return EventType{}, false
}

func (r ReferenceDataSet) EquipmentItem(id string) (Equipment, bool) {
	for _, eq := range r.Equipment {
		if eq.ID == id {
			return eq, true
		}
	}
	return Equipment{}, false
}

func (r ReferenceDataSet) Service(id string) (AdditionalService, bool) {
	for _, s := range r.Services {
		if s.ID == id {
			return s, true
		}
	}
	return AdditionalService{}, false
}
