package predict

import (
	"bufio"
	"encoding/json"
	"fmt"
	"math"
	"os"

	"mlplayground/datastructures"
)

// Predictor is the loading side every shipped model implements. A predictor
// is loaded once at process start from an artifact directory containing
// model_info.json, labels.txt and the model file, and is read-only afterwards.
type Predictor interface {
	Load(basePath string) error
	Labels() []string
	ModelInfo() datastructures.ModelInfo
}

func loadLabels(path string) ([]string, error) {
	var labels []string
	file, err := os.Open(path)
	if err != nil {
		log.Debug("[Loading Labels] Couldn't open file: ", err)
		return labels, err
	}
	defer file.Close()
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		labels = append(labels, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		log.Debug("[Loading Labels] Failed to read labels file: ", err.Error())
		return labels, err
	}

	return labels, nil
}

func loadModelInfo(path string) (datastructures.ModelInfo, error) {
	var modelInfo datastructures.ModelInfo
	data, err := os.ReadFile(path)
	if err != nil {
		log.Debug("[Loading Model Info] Couldn't read file: ", err.Error())
		return modelInfo, err
	}
	if err := json.Unmarshal(data, &modelInfo); err != nil {
		log.Debug("[Loading Model Info] Couldn't parse file: ", err.Error())
		return modelInfo, err
	}
	return modelInfo, nil
}

// bestLabel picks the label with the highest probability. Ties keep the
// earliest label in file order.
func bestLabel(probabilities []float64, labels []string) datastructures.Result {
	var result datastructures.Result
	bestIdx := 0
	for i, p := range probabilities {
		if p > probabilities[bestIdx] {
			bestIdx = i
		}
	}

	result.Score = probabilities[bestIdx]
	result.Label = labels[bestIdx]

	return result
}

func sigmoid(x float64) float64 {
	return 1.0 / (1.0 + math.Exp(-x))
}

// binaryLabels enforces the two-class layout both artifacts share: line 0 is
// the negative class, line 1 the positive class the sigmoid margin scores.
func binaryLabels(path string) ([]string, error) {
	labels, err := loadLabels(path)
	if err != nil {
		return nil, err
	}
	if len(labels) != 2 {
		return nil, fmt.Errorf("expected 2 labels, got %d", len(labels))
	}
	return labels, nil
}
