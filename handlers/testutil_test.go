package handlers_test

import (
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/gin-gonic/gin"

	"mlplayground/datastructures"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ok fails the test if err is not nil.
func ok(tb testing.TB, err error) {
	tb.Helper()
	if err != nil {
		tb.Fatalf("unexpected error: %s", err.Error())
	}
}

// equals fails the test if act is not equal to exp.
func equals(tb testing.TB, act interface{}, exp interface{}) {
	tb.Helper()
	if !reflect.DeepEqual(act, exp) {
		tb.Fatalf("got %#v, want %#v", act, exp)
	}
}

// notEquals fails the test if act equals unexp.
func notEquals(tb testing.TB, act interface{}, unexp interface{}) {
	tb.Helper()
	if reflect.DeepEqual(act, unexp) {
		tb.Fatalf("got unexpected value %#v", act)
	}
}

func startServer(tb testing.TB, router *gin.Engine) *httptest.Server {
	tb.Helper()
	server := httptest.NewServer(router)
	tb.Cleanup(server.Close)
	return server
}

func examplePatientPayload() map[string]interface{} {
	return map[string]interface{}{
		"PlasmaGlucose":     120,
		"BloodWorkResult_1": 4,
		"BloodPressure":     80,
		"BloodWorkResult_2": 7,
		"BloodWorkResult_3": 9,
		"BodyMassIndex":     25.5,
		"BloodWorkResult_4": 12.5,
		"Age":               50,
	}
}

// stubClassifier returns a fixed result and counts how often the model ran.
type stubClassifier struct {
	result datastructures.Result
	err    error
	calls  int
}

func (s *stubClassifier) Classify(features [8]float64) (datastructures.Result, error) {
	s.calls++
	if s.err != nil {
		return datastructures.Result{}, s.err
	}
	return s.result, nil
}

func (s *stubClassifier) Labels() []string {
	return []string{"Negative", "Positive"}
}

func (s *stubClassifier) ModelInfo() datastructures.ModelInfo {
	return datastructures.ModelInfo{Build: 1, BasedOn: "stub"}
}

// stubAnalyzer mirrors stubClassifier for the sentiment endpoint and records
// the text it was asked to score.
type stubAnalyzer struct {
	result   datastructures.Result
	err      error
	calls    int
	lastText string
}

func (s *stubAnalyzer) Analyze(text string) (datastructures.Result, error) {
	s.calls++
	s.lastText = text
	if s.err != nil {
		return datastructures.Result{}, s.err
	}
	return s.result, nil
}

func (s *stubAnalyzer) Labels() []string {
	return []string{"NEGATIVE", "POSITIVE"}
}

func (s *stubAnalyzer) ModelInfo() datastructures.ModelInfo {
	return datastructures.ModelInfo{Build: 1, BasedOn: "stub"}
}
