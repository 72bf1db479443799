package schema

// Operator compares an answer to an expected value.
type Operator string

const (
	OpEquals    Operator = "equals"     // answer == value (array: membership)
	OpNotEquals Operator = "not_equals" // answer != value (array: non-membership)
	OpContains  Operator = "contains"   // substring on scalars, membership on arrays
	OpLt        Operator = "lt"         // numeric <
	OpLte       Operator = "lte"        // numeric <=
	OpGt        Operator = "gt"         // numeric >
	OpGte       Operator = "gte"        // numeric >=
)

// GroupLogic combines the conditions inside one group.
type GroupLogic string

const (
	LogicAll GroupLogic = "all" // every condition must hold
	LogicAny GroupLogic = "any" // at least one condition must hold
)

// NormalizeLogic coerces any input to a valid GroupLogic. Everything that is
// not exactly "any" reads as "all".
func NormalizeLogic(l GroupLogic) GroupLogic {
	if l == LogicAny {
		return LogicAny
	}
	return LogicAll
}

// QuestionType identifies the widget class of a question.
type QuestionType string

const (
	QuestionText        QuestionType = "text"
	QuestionNumber      QuestionType = "number"
	QuestionDate        QuestionType = "date"
	QuestionSelect      QuestionType = "select"
	QuestionMultiSelect QuestionType = "multiselect"
	QuestionFile        QuestionType = "file"
	QuestionRanking     QuestionType = "ranking"
)

// ComplexityLevel is the ordinal severity scale used by risks and committee
// thresholds. Labels are French because the questionnaire content is.
type ComplexityLevel string

const (
	ComplexityLow    ComplexityLevel = "Faible"
	ComplexityMedium ComplexityLevel = "Moyen"
	ComplexityHigh   ComplexityLevel = "Élevé"
)

// Rank maps a complexity level onto the ordinal scale Faible < Moyen < Élevé.
// Unknown labels rank below Faible so they can never satisfy a threshold.
func (c ComplexityLevel) Rank() int {
	switch c {
	case ComplexityLow:
		return 1
	case ComplexityMedium:
		return 2
	case ComplexityHigh:
		return 3
	default:
		return 0
	}
}

// TimingStatus is the outcome of a timing evaluation.
type TimingStatus string

const (
	TimingSatisfied TimingStatus = "satisfied"
	TimingBreach    TimingStatus = "breach"
	TimingUnknown   TimingStatus = "unknown" // missing or unparsable dates
)

// ValidationLimits defines the constraints for various fields.
const (
	QuestionLabelMin   = 1
	QuestionLabelMax   = 300
	NameMin            = 1
	NameMax            = 120
	DescriptionMax     = 1000
	CriterionLabelMin  = 1
	CriterionLabelMax  = 120
	CommitteeEmailsMax = 20
)
