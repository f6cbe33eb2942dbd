package models

// Step is the wizard position, 1 through MaxStep.
type Step int

const (
	StepEventType Step = iota + 1
	StepLocation
	StepEquipment
	StepDetails
	StepServices
	StepSummary
	StepContact
)

const (
	MinStep = StepEventType
	MaxStep = StepContact
)

// Valid reports whether s lies inside the wizard.
func (s Step) Valid() bool {
	return s >= MinStep && s <= MaxStep
}

// StepInfo describes one wizard screen.
type StepInfo struct {
	ID          Step   `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

var stepCatalog = []StepInfo{
	{ID: StepEventType, Title: "Tipo de Evento", Description: "Escolha o tipo de festa que deseja realizar"},
	{ID: StepLocation, Title: "Local do Evento", Description: "Onde será realizada a festa?"},
	{ID: StepEquipment, Title: "Equipamentos", Description: "Selecione os brinquedos e equipamentos"},
	{ID: StepDetails, Title: "Duração e Convidados", Description: "Defina a duração e número de convidados"},
	{ID: StepServices, Title: "Serviços Adicionais", Description: "Escolha serviços extras para sua festa"},
	{ID: StepSummary, Title: "Resumo da Solicitação", Description: "Revise todos os detalhes da sua festa"},
	{ID: StepContact, Title: "Seus Dados", Description: "Finalize com suas informações de contato"},
}

// Steps returns the ordered step catalog.
func Steps() []StepInfo {
	out := make([]StepInfo, len(stepCatalog))
	copy(out, stepCatalog)
	return out
}

// Info returns the catalog entry for s. Out of range steps yield a zero StepInfo.
func (s Step) Info() StepInfo {
	if !s.Valid() {
		return StepInfo{}
	}
	return stepCatalog[s-1]
}
