package predict

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"mlplayground/datastructures"
)

// SepsisPredictor serves the gradient boosting artifact trained on the ICU
// patient dataset. Label order is [negative, positive]; the ensemble margin
// scores the positive class.
type SepsisPredictor struct {
	labels    []string
	model     *gradientBoostModel
	modelInfo datastructures.ModelInfo
}

var _ Predictor = (*SepsisPredictor)(nil)

func NewSepsisPredictor() *SepsisPredictor {
	return &SepsisPredictor{}
}

func (p *SepsisPredictor) Load(basePath string) error {
	modelInfo, err := loadModelInfo(filepath.Join(basePath, "model_info.json"))
	if err != nil {
		log.Debug("[Sepsis Model] Couldn't read model info: ", err.Error())
		return err
	}
	p.modelInfo = modelInfo

	labels, err := binaryLabels(filepath.Join(basePath, "labels.txt"))
	if err != nil {
		log.Debug("[Sepsis Model] Couldn't get labels: ", err.Error())
		return err
	}
	p.labels = labels

	data, err := os.ReadFile(filepath.Join(basePath, "model.json"))
	if err != nil {
		log.Debug("[Sepsis Model] Couldn't read model: ", err.Error())
		return err
	}

	var model gradientBoostModel
	if err := json.Unmarshal(data, &model); err != nil {
		log.Debug("[Sepsis Model] Couldn't parse model: ", err.Error())
		return err
	}
	if err := model.validate(); err != nil {
		log.Debug("[Sepsis Model] Rejecting model: ", err.Error())
		return fmt.Errorf("invalid model artifact: %w", err)
	}
	if len(model.FeatureNames) != 8 {
		return fmt.Errorf("expected 8 features, model declares %d", len(model.FeatureNames))
	}
	p.model = &model

	return nil
}

// Classify maps one feature vector to the predicted label and its
// probability. Concurrent calls are safe, the model is read-only after Load.
func (p *SepsisPredictor) Classify(features [8]float64) (datastructures.Result, error) {
	if p.model == nil {
		return datastructures.Result{}, errors.New("model not loaded")
	}

	positive := sigmoid(p.model.margin(features[:]))
	probabilities := []float64{1 - positive, positive}
	return bestLabel(probabilities, p.labels), nil
}

func (p *SepsisPredictor) Labels() []string {
	return p.labels
}

func (p *SepsisPredictor) ModelInfo() datastructures.ModelInfo {
	return p.modelInfo
}

// FeatureNames returns the column order the artifact was trained on.
func (p *SepsisPredictor) FeatureNames() []string {
	if p.model == nil {
		return nil
	}
	return p.model.FeatureNames
}
