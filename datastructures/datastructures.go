package datastructures

// Result is the wire shape of a single prediction: the predicted class label
// and the model's probability for it. Nothing else is ever added here, the
// classify/analyze endpoints answer with exactly these two fields.
type Result struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// SepsisFeatures is the fixed eight-field patient record accepted by the
// classify endpoints. The fields are pointers so that a missing field fails
// binding validation while an explicit zero passes.
type SepsisFeatures struct {
	PlasmaGlucose    *float64 `json:"PlasmaGlucose" binding:"required"`
	BloodWorkResult1 *float64 `json:"BloodWorkResult_1" binding:"required"`
	BloodPressure    *float64 `json:"BloodPressure" binding:"required"`
	BloodWorkResult2 *float64 `json:"BloodWorkResult_2" binding:"required"`
	BloodWorkResult3 *float64 `json:"BloodWorkResult_3" binding:"required"`
	BodyMassIndex    *float64 `json:"BodyMassIndex" binding:"required"`
	BloodWorkResult4 *float64 `json:"BloodWorkResult_4" binding:"required"`
	Age              *float64 `json:"Age" binding:"required"`
}

// Vector returns the features in the column order the model was trained on.
// Callers must only invoke this after binding validated all fields.
func (s SepsisFeatures) Vector() [8]float64 {
	return [8]float64{
		*s.PlasmaGlucose,
		*s.BloodWorkResult1,
		*s.BloodPressure,
		*s.BloodWorkResult2,
		*s.BloodWorkResult3,
		*s.BodyMassIndex,
		*s.BloodWorkResult4,
		*s.Age,
	}
}

// SentimentRequest is the payload of the sentiment demo's analyze endpoint.
type SentimentRequest struct {
	Text string `json:"text" binding:"required"`
}

type ModelInfo struct {
	Build     int32    `json:"build"`
	Created   string   `json:"created"`
	TrainedOn []string `json:"trained_on"`
	BasedOn   string   `json:"based_on"`
}
