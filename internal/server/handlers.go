package server

import (
	"math/big"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/matzehuels/cosmos/pkg/buildinfo"
	"github.com/matzehuels/cosmos/pkg/catalog"
	"github.com/matzehuels/cosmos/pkg/errors"
	"github.com/matzehuels/cosmos/pkg/nested"
	"github.com/matzehuels/cosmos/pkg/simplex"
)

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type healthResponse struct {
	Status string         `json:"status"`
	Build  buildinfo.Info `json:"build"`
}

type pascalResponse struct {
	N   int        `json:"n"`
	Row []*big.Int `json:"row"`
	Sum *big.Int   `json:"sum"`
}

type simplexResponse struct {
	Dim   int               `json:"dim"`
	Faces simplex.FaceTable `json:"faces"`
	Total *big.Int          `json:"total"`
}

type nestedResponse struct {
	Level      int    `json:"level"`
	Notation   string `json:"notation"`
	Expression string `json:"expression"`
	Array      []any  `json:"array"`
	Leaves     int    `json:"leaves"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Build: buildinfo.Get()})
}

func (s *Server) handleSystems(w http.ResponseWriter, r *http.Request) {
	snaps := make([]catalog.Snapshot, 0, catalog.MaxLevel+1)
	for level := catalog.MinLevel; level <= catalog.MaxLevel; level++ {
		snap, _, err := s.runner.Analyze(r.Context(), level)
		if err != nil {
			s.writeError(w, err)
			return
		}
		snaps = append(snaps, snap)
	}
	writeJSON(w, http.StatusOK, snaps)
}

func (s *Server) handleSystem(w http.ResponseWriter, r *http.Request) {
	level, err := intParam(r, "level")
	if err != nil {
		s.writeError(w, err)
		return
	}
	snap, hit, err := s.runner.Analyze(r.Context(), level)
	if err != nil {
		s.writeError(w, err)
		return
	}
	setCacheHeader(w, hit)
	writeJSON(w, http.StatusOK, snap)
}

func (s *Server) handleMatula(w http.ResponseWriter, r *http.Request) {
	n, err := intParam(r, "n")
	if err == nil {
		err = errors.RequireAtMost("n", n, maxMatula)
	}
	if err != nil {
		s.writeError(w, err)
		return
	}
	t, hit, err := s.runner.Tree(r.Context(), n)
	if err != nil {
		s.writeError(w, err)
		return
	}
	setCacheHeader(w, hit)
	writeJSON(w, http.StatusOK, t)
}

func (s *Server) handlePartitions(w http.ResponseWriter, r *http.Request) {
	n, err := intParam(r, "n")
	if err != nil {
		s.writeError(w, err)
		return
	}
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		if limit, err = strconv.Atoi(v); err != nil {
			s.writeError(w, errors.InvalidArgument("limit must be an integer, got %q", v))
			return
		}
	}
	p, hit, err := s.runner.Partitions(r.Context(), n, limit)
	if err != nil {
		s.writeError(w, err)
		return
	}
	setCacheHeader(w, hit)
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handlePascal(w http.ResponseWriter, r *http.Request) {
	n, err := intParam(r, "n")
	if err == nil {
		err = errors.RequireAtMost("n", n, maxPascalRow)
	}
	if err != nil {
		s.writeError(w, err)
		return
	}
	row := simplex.PascalRow(n)
	writeJSON(w, http.StatusOK, pascalResponse{N: n, Row: row, Sum: row.Sum()})
}

func (s *Server) handleSimplex(w http.ResponseWriter, r *http.Request) {
	dim, err := intParam(r, "dim")
	if err == nil {
		err = errors.RequireAtMost("dim", dim, maxPascalRow-1)
	}
	if err != nil {
		s.writeError(w, err)
		return
	}
	faces := simplex.Faces(dim)
	writeJSON(w, http.StatusOK, simplexResponse{Dim: dim, Faces: faces, Total: faces.Total()})
}

func (s *Server) handleNested(w http.ResponseWriter, r *http.Request) {
	level, err := intParam(r, "level")
	if err == nil {
		err = errors.RequireNonNegative("level", level)
	}
	if err == nil {
		err = errors.RequireAtMost("level", level, maxNestedLevel)
	}
	if err != nil {
		s.writeError(w, err)
		return
	}
	e := nested.Build(level)
	writeJSON(w, http.StatusOK, nestedResponse{
		Level:      level,
		Notation:   e.String(),
		Expression: nested.Render(e),
		Array:      nested.ToArray(e),
		Leaves:     e.Leaves(),
	})
}

func intParam(r *http.Request, name string) (int, error) {
	v := chi.URLParam(r, name)
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, errors.InvalidArgument("%s must be an integer, got %q", name, v)
	}
	return n, nil
}

func setCacheHeader(w http.ResponseWriter, hit bool) {
	if hit {
		w.Header().Set("X-Cache", "hit")
	} else {
		w.Header().Set("X-Cache", "miss")
	}
}

// statusFor maps error codes to HTTP status codes.
func statusFor(err error) int {
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidArgument, errors.ErrCodeMalformedInput,
		errors.ErrCodeNotPrime, errors.ErrCodeOverflow:
		return http.StatusBadRequest
	case errors.ErrCodeUnknownLevel:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	code := string(errors.GetCode(err))
	if code == "" {
		code = string(errors.ErrCodeInternal)
	}
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "err", err)
	}
	writeJSON(w, status, errorBody{Code: code, Message: errors.UserMessage(err)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
