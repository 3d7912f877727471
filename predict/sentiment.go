package predict

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"mlplayground/datastructures"
)

// lexiconModel mirrors the on-disk weights.json artifact: per-token log-odds
// with a shared bias. Tokens following a negation word within two positions
// contribute with flipped sign.
type lexiconModel struct {
	Bias      float64            `json:"bias"`
	Weights   map[string]float64 `json:"weights"`
	Negations []string           `json:"negations"`
}

// SentimentPredictor serves the lexicon sentiment artifact. Label order is
// [negative, positive]; the summed margin scores the positive class.
type SentimentPredictor struct {
	labels    []string
	model     *lexiconModel
	negations map[string]bool
	modelInfo datastructures.ModelInfo
}

var _ Predictor = (*SentimentPredictor)(nil)

func NewSentimentPredictor() *SentimentPredictor {
	return &SentimentPredictor{}
}

func (p *SentimentPredictor) Load(basePath string) error {
	modelInfo, err := loadModelInfo(filepath.Join(basePath, "model_info.json"))
	if err != nil {
		log.Debug("[Sentiment Model] Couldn't read model info: ", err.Error())
		return err
	}
	p.modelInfo = modelInfo

	labels, err := binaryLabels(filepath.Join(basePath, "labels.txt"))
	if err != nil {
		log.Debug("[Sentiment Model] Couldn't get labels: ", err.Error())
		return err
	}
	p.labels = labels

	data, err := os.ReadFile(filepath.Join(basePath, "weights.json"))
	if err != nil {
		log.Debug("[Sentiment Model] Couldn't read weights: ", err.Error())
		return err
	}

	var model lexiconModel
	if err := json.Unmarshal(data, &model); err != nil {
		log.Debug("[Sentiment Model] Couldn't parse weights: ", err.Error())
		return err
	}
	if len(model.Weights) == 0 {
		return fmt.Errorf("invalid model artifact: empty weights table")
	}
	p.model = &model

	p.negations = make(map[string]bool, len(model.Negations))
	for _, n := range model.Negations {
		p.negations[n] = true
	}

	return nil
}

// Analyze scores one piece of text. Text without any known token lands on the
// bias margin, which for the shipped artifact means a 0.5 tie resolved to the
// negative label.
func (p *SentimentPredictor) Analyze(text string) (datastructures.Result, error) {
	if p.model == nil {
		return datastructures.Result{}, errors.New("model not loaded")
	}

	margin := p.model.Bias
	pending := 0
	for _, token := range tokenize(text) {
		if p.negations[token] {
			pending = 2
			continue
		}
		weight := p.model.Weights[token]
		if pending > 0 {
			weight = -weight
			pending--
		}
		margin += weight
	}

	positive := sigmoid(margin)
	probabilities := []float64{1 - positive, positive}
	return bestLabel(probabilities, p.labels), nil
}

func (p *SentimentPredictor) Labels() []string {
	return p.labels
}

func (p *SentimentPredictor) ModelInfo() datastructures.ModelInfo {
	return p.modelInfo
}

// tokenize lowercases and splits on anything that is not a letter.
// Apostrophes are dropped in place so "don't" becomes "dont" and still hits
// the negation list.
func tokenize(text string) []string {
	var tokens []string
	var current strings.Builder
	for _, r := range strings.ToLower(text) {
		switch {
		case unicode.IsLetter(r):
			current.WriteRune(r)
		case r == '\'':
			// swallow, keep the token going
		default:
			if current.Len() > 0 {
				tokens = append(tokens, current.String())
				current.Reset()
			}
		}
	}
	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}
	return tokens
}
