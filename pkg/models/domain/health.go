package domain

// ProjectStatus is the execution state of a project.
type ProjectStatus string

const (
	StatusPlanning   ProjectStatus = "Planning"
	StatusInProgress ProjectStatus = "In progress"
	StatusComplete   ProjectStatus = "Complete"
	StatusPaused     ProjectStatus = "Paused"
	StatusCancelled  ProjectStatus = "Cancelled"
)

func (s ProjectStatus) IsValid() bool {
	switch s {
	case StatusPlanning, StatusInProgress, StatusComplete, StatusPaused, StatusCancelled:
		return true
	default:
		return false
	}
}

// ProjectPriority is the business priority of a project.
type ProjectPriority string

const (
	PriorityHigh   ProjectPriority = "High"
	PriorityMedium ProjectPriority = "Medium"
	PriorityLow    ProjectPriority = "Low"
)

func (p ProjectPriority) IsValid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	default:
		return false
	}
}

// HealthBand classifies a 0-100 composite health score. Dashboards key
// off the band colors, so they are part of the contract.
type HealthBand string

const (
	HealthExcellent HealthBand = "excellent"
	HealthGood      HealthBand = "good"
	HealthFair      HealthBand = "fair"
	HealthPoor      HealthBand = "poor"
	HealthCritical  HealthBand = "critical"
)

func (b HealthBand) Color() string {
	switch b {
	case HealthExcellent:
		return "#10b981"
	case HealthGood:
		return "#3b82f6"
	case HealthFair:
		return "#f59e0b"
	case HealthPoor:
		return "#f97316"
	default:
		return "#ef4444"
	}
}

// ProjectHealthInputs is the slice of a project record the health
// aggregator reads. NPV and RiskScore are nil when the corresponding
// calculation was never recorded; absent data is excluded from scoring,
// never penalized as zero.
type ProjectHealthInputs struct {
	NPV       *float64
	RiskScore *float64
	Status    ProjectStatus
	Priority  ProjectPriority
}

// ProjectHealth is one project's composite health score.
type ProjectHealth struct {
	Project string
	Score   int
	Band    HealthBand
}

// PortfolioSummary is the dashboard-level aggregation over all scored
// projects. NeedsAttention lists projects below the fair threshold.
type PortfolioSummary struct {
	ProjectCount   int
	AverageScore   float64
	BandCounts     map[HealthBand]int
	NeedsAttention []ProjectHealth
}
