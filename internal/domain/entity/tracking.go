package entity

// StageStatus is the progress marker of one fulfilment stage.
type StageStatus string

const (
	StageCompleted StageStatus = "completed"
	StageCurrent   StageStatus = "current"
	StagePending   StageStatus = "pending"
)

// TrackingStage is one step of the fulfilment timeline.
type TrackingStage struct {
	Label       string      `json:"label"`
	Status      StageStatus `json:"status"`
	Description string      `json:"description"`
	Time        string      `json:"time"`
}

// TrackingResult is what a tracking lookup renders.
type TrackingResult struct {
	Reference        string          `json:"reference"`
	Destination      string          `json:"destination"`
	EstimatedArrival string          `json:"estimated_arrival"`
	Stages           []TrackingStage `json:"stages"`
}

// SimulatedTracking returns the canned timeline shown for any reference.
// It is not correlated with any order.
func SimulatedTracking(reference string) TrackingResult {
	return TrackingResult{
		Reference:        reference,
		Destination:      "Victoria Island, Lagos, NG",
		EstimatedArrival: "Dec 28, 2025",
		Stages: []TrackingStage{
			{Label: "Order Secured", Status: StageCompleted, Description: "Our concierge has verified your request.", Time: "Dec 24, 10:20 AM"},
			{Label: "Curation Phase", Status: StageCurrent, Description: "Master tailors are preparing your collection.", Time: "In Progress"},
			{Label: "Sealed for Transit", Status: StagePending, Description: "Secured in climate-controlled vault.", Time: "Pending"},
			{Label: "Concierge Delivery", Status: StagePending, Description: "White-glove delivery to your location.", Time: "Pending"},
		},
	}
}
