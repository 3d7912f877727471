package predict

import "fmt"

// treeNode is one node of a regression tree in the boosted ensemble. Interior
// nodes route on Feature/Threshold (left when feature <= threshold), leaves
// carry the additive margin contribution in Value.
type treeNode struct {
	Feature   int     `json:"feature"`
	Threshold float64 `json:"threshold"`
	Left      int     `json:"left"`
	Right     int     `json:"right"`
	Leaf      bool    `json:"leaf"`
	Value     float64 `json:"value"`
}

type tree struct {
	Nodes []treeNode `json:"nodes"`
}

func (t tree) eval(features []float64) float64 {
	i := 0
	for !t.Nodes[i].Leaf {
		n := t.Nodes[i]
		if features[n.Feature] <= n.Threshold {
			i = n.Left
		} else {
			i = n.Right
		}
	}
	return t.Nodes[i].Value
}

// gradientBoostModel mirrors the on-disk model.json artifact: a shared prior
// margin plus one small regression tree per boosting round.
type gradientBoostModel struct {
	BaseScore    float64  `json:"base_score"`
	FeatureNames []string `json:"feature_names"`
	Trees        []tree   `json:"trees"`
}

// margin sums the raw ensemble output for one feature vector. The caller maps
// it to a probability with the sigmoid.
func (m *gradientBoostModel) margin(features []float64) float64 {
	s := m.BaseScore
	for _, t := range m.Trees {
		s += t.eval(features)
	}
	return s
}

// validate rejects artifacts whose node references or feature indices would
// make eval walk out of bounds.
func (m *gradientBoostModel) validate() error {
	if len(m.FeatureNames) == 0 {
		return fmt.Errorf("model has no feature names")
	}
	if len(m.Trees) == 0 {
		return fmt.Errorf("model has no trees")
	}
	for ti, t := range m.Trees {
		if len(t.Nodes) == 0 {
			return fmt.Errorf("tree %d has no nodes", ti)
		}
		for ni, n := range t.Nodes {
			if n.Leaf {
				continue
			}
			if n.Feature < 0 || n.Feature >= len(m.FeatureNames) {
				return fmt.Errorf("tree %d node %d references feature %d of %d", ti, ni, n.Feature, len(m.FeatureNames))
			}
			if n.Left <= ni || n.Left >= len(t.Nodes) || n.Right <= ni || n.Right >= len(t.Nodes) {
				return fmt.Errorf("tree %d node %d has invalid children %d/%d", ti, ni, n.Left, n.Right)
			}
		}
	}
	return nil
}
