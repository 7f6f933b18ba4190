package server

import (
	"math"
	"net/http"

	"github.com/arloliu/calfit/calibration"
	"github.com/arloliu/calfit/regression"
)

type fitRequest struct {
	Samples regression.Dataset `json:"samples"`
	Degree  int                `json:"degree"`
	Rcond   float64            `json:"rcond,omitempty"`
}

type modelResponse struct {
	Degree       int                        `json:"degree"`
	Coefficients regression.Coefficients    `json:"coefficients"`
	Formula      string                     `json:"formula"`
	Rank         int                        `json:"rank"`
	Training     *regression.ResidualReport `json:"training"`
	Evaluation   *regression.ResidualReport `json:"evaluation,omitempty"`
}

func newModelResponse(m *regression.Model) modelResponse {
	return modelResponse{
		Degree:       m.Degree,
		Coefficients: m.Coefficients,
		Formula:      m.Formula,
		Rank:         m.Rank,
		Training:     m.Training,
		Evaluation:   m.Evaluation,
	}
}

type predictRequest struct {
	Coefficients regression.Coefficients `json:"coefficients"`
	Xs           []float64               `json:"xs"`
}

type predictResponse struct {
	Ys []float64 `json:"ys"`
}

type residualsRequest struct {
	Coefficients regression.Coefficients `json:"coefficients"`
	Samples      regression.Dataset      `json:"samples"`
}

type compareRequest struct {
	Training   regression.Dataset `json:"training"`
	Validation regression.Dataset `json:"validation"`
	Degrees    []int              `json:"degrees"`
}

type compareResponse struct {
	Best    int             `json:"best_degree"`
	Models  []modelResponse `json:"models"`
	Skipped []int           `json:"skipped,omitempty"`
}

type calibrateRequest struct {
	Training    []calibration.Reading `json:"training"`
	Validation  []calibration.Reading `json:"validation"`
	Direction   string                `json:"direction,omitempty"`
	Degree      int                   `json:"degree,omitempty"`
	CurvePoints *int                  `json:"curve_points,omitempty"`
}

type calibrateResponse struct {
	Direction      calibration.Direction      `json:"direction"`
	Degree         int                        `json:"degree"`
	Coefficients   regression.Coefficients    `json:"coefficients"`
	Formula        string                     `json:"formula"`
	Rank           int                        `json:"rank"`
	Fingerprint    uint64                     `json:"fingerprint,string"`
	Training       *regression.ResidualReport `json:"training"`
	Validation     *regression.ResidualReport `json:"validation,omitempty"`
	TrainingRows   []rowResponse              `json:"training_rows"`
	ValidationRows []rowResponse              `json:"validation_rows,omitempty"`
	Curve          regression.Dataset         `json:"curve,omitempty"`
}

// rowResponse mirrors calibration.Row. PercentageError is null when the actual
// value is zero and the percentage is infinite.
type rowResponse struct {
	X               float64  `json:"x"`
	Actual          float64  `json:"actual"`
	Predicted       float64  `json:"predicted"`
	AbsoluteError   float64  `json:"absolute_error"`
	PercentageError *float64 `json:"percentage_error"`
}

func newRowResponses(rows []calibration.Row) []rowResponse {
	if rows == nil {
		return nil
	}

	out := make([]rowResponse, len(rows))
	for i, row := range rows {
		out[i] = rowResponse{
			X:             row.X,
			Actual:        row.Actual,
			Predicted:     row.Predicted,
			AbsoluteError: row.AbsoluteError,
		}
		if !math.IsInf(row.PercentageError, 0) {
			pct := row.PercentageError
			out[i].PercentageError = &pct
		}
	}

	return out
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleFit(w http.ResponseWriter, r *http.Request) {
	var req fitRequest
	if err := s.decode(w, r, &req); err != nil {
		s.writeError(w, err)
		return
	}

	var opts []regression.FitOption
	if req.Rcond != 0 {
		opts = append(opts, regression.WithRcond(req.Rcond))
	}

	m, err := regression.FitModel(req.Samples, req.Degree, opts...)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, newModelResponse(m))
}

func (s *Server) handlePredict(w http.ResponseWriter, r *http.Request) {
	var req predictRequest
	if err := s.decode(w, r, &req); err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, predictResponse{Ys: regression.PredictBatch(req.Coefficients, req.Xs)})
}

func (s *Server) handleResiduals(w http.ResponseWriter, r *http.Request) {
	var req residualsRequest
	if err := s.decode(w, r, &req); err != nil {
		s.writeError(w, err)
		return
	}

	rep, err := regression.EvaluateResiduals(req.Coefficients, req.Samples)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, rep)
}

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	var req compareRequest
	if err := s.decode(w, r, &req); err != nil {
		s.writeError(w, err)
		return
	}

	res, err := regression.Compare(req.Training, req.Validation, req.Degrees)
	if err != nil {
		s.writeError(w, err)
		return
	}

	resp := compareResponse{Best: res.BestFit.Degree, Skipped: res.Skipped}
	for _, m := range res.AllModels {
		resp.Models = append(resp.Models, newModelResponse(m))
	}

	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCalibrate(w http.ResponseWriter, r *http.Request) {
	var req calibrateRequest
	if err := s.decode(w, r, &req); err != nil {
		s.writeError(w, err)
		return
	}

	var opts []calibration.Option
	if req.Direction != "" {
		dir, err := calibration.ParseDirection(req.Direction)
		if err != nil {
			s.writeError(w, err)
			return
		}
		opts = append(opts, calibration.WithDirection(dir))
	}
	if req.Degree != 0 {
		opts = append(opts, calibration.WithDegree(req.Degree))
	}
	if req.CurvePoints != nil {
		opts = append(opts, calibration.WithCurve(*req.CurvePoints, calibration.DefaultCurveMargin))
	}
	opts = append(opts, calibration.WithLogger(s.logger))

	rep, err := calibration.Calibrate(req.Training, req.Validation, opts...)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, calibrateResponse{
		Direction:      rep.Direction,
		Degree:         rep.Degree,
		Coefficients:   rep.Coefficients,
		Formula:        rep.Formula,
		Rank:           rep.Rank,
		Fingerprint:    rep.Fingerprint,
		Training:       rep.Training,
		Validation:     rep.Validation,
		TrainingRows:   newRowResponses(rep.Rows(calibration.TrainingSet)),
		ValidationRows: newRowResponses(rep.Rows(calibration.ValidationSet)),
		Curve:          rep.Curve,
	})
}
