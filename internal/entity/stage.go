package entity

// StudyStage is one step of the fixed exegetical workflow. The order of
// StageOrder is significant: it defines the forward-progress ratchet used by
// the access gate.
type StudyStage string

const (
	StageObservation          StudyStage = "observation"
	StageGrammar              StudyStage = "grammar"
	StageSemantics            StudyStage = "semantics"
	StageTheology             StudyStage = "theology"
	StageCanonicalCorrelation StudyStage = "canonical-correlation"
	StageHomiletics           StudyStage = "homiletics"
)

var StageOrder = []StudyStage{
	StageObservation,
	StageGrammar,
	StageSemantics,
	StageTheology,
	StageCanonicalCorrelation,
	StageHomiletics,
}

// Ordinal returns the position of the stage in the workflow, or -1 when the
// value is not one of the six stages.
func (s StudyStage) Ordinal() int {
	for i, stage := range StageOrder {
		if stage == s {
			return i
		}
	}
	return -1
}

func (s StudyStage) Valid() bool {
	return s.Ordinal() >= 0
}

// CanAccessStage reports whether content for target should be reachable when
// the session currently sits at current. It is a pure predicate, deliberately
// separate from the stage mutator: the mutator is unconditional, the gate is
// advisory for consumers deciding what to render.
func CanAccessStage(current, target StudyStage) bool {
	c := current.Ordinal()
	t := target.Ordinal()
	if c < 0 || t < 0 {
		return false
	}
	return t <= c
}
