// internal/httpserver/routes_fraud.go
//
// HTTP routes for generating grids.
//   - GET  /levels → selectable skill levels
//   - GET  /fraud  → grid from query (?attempts=3&hard=true)
//   - POST /fraud  → grid from JSON body {"attempts":3,"hardMode":true}
//
// A fresh answer is drawn for every request unless one is supplied
// (testing only).

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/fraudle/internal/daily"
	"github.com/robalobadob/fraudle/internal/game"
	"github.com/robalobadob/fraudle/internal/render"
)

// ShareMessage accompanies every generated grid.
const ShareMessage = "Nice work. Now tell all your friends."

// mountFraud registers the generator routes.
func (s *Server) mountFraud(r chi.Router) {
	r.Get("/levels", s.handleLevels)
	r.Get("/fraud", s.handleFraudQuery)
	r.Post("/fraud", s.handleFraudJSON)
}

// levelsRes is returned by /levels.
type levelsRes struct {
	Default int          `json:"default"`
	Levels  []game.Level `json:"levels"`
}

func (s *Server) handleLevels(w http.ResponseWriter, r *http.Request) {
	_ = json.NewEncoder(w).Encode(levelsRes{Default: game.DefaultAttempts, Levels: game.Levels()})
}

// fraudReq is the POST /fraud payload.
type fraudReq struct {
	Attempts int    `json:"attempts"` // 2..6; 0 selects game.DefaultAttempts
	HardMode bool   `json:"hardMode"`
	Answer   string `json:"answer"` // optional fixed answer (testing)
}

// fraudRes is the /fraud response.
type fraudRes struct {
	Puzzle   int           `json:"puzzle"`
	Attempts int           `json:"attempts"`
	HardMode bool          `json:"hardMode"`
	Level    string        `json:"level"`
	Text     string        `json:"text"`
	Rows     []string      `json:"rows"`
	Marks    [][]game.Mark `json:"marks"`
	Rounds   int           `json:"rounds"`
	Message  string        `json:"message"`
}

func (s *Server) handleFraudJSON(w http.ResponseWriter, r *http.Request) {
	var req fraudReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	s.generate(w, req)
}

func (s *Server) handleFraudQuery(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := fraudReq{Answer: q.Get("answer")}
	if v := q.Get("attempts"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_attempts")
			return
		}
		req.Attempts = n
	}
	if v := q.Get("hard"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_hard")
			return
		}
		req.HardMode = b
	}
	s.generate(w, req)
}

// generate plays a session for req and writes the rendered grid.
func (s *Server) generate(w http.ResponseWriter, req fraudReq) {
	if req.Attempts == 0 {
		req.Attempts = game.DefaultAttempts
	}

	answer := s.gen.NewAnswer()
	if req.Answer != "" {
		a, err := s.gen.Alphabet().Parse(req.Answer)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_answer")
			return
		}
		answer = a
	}

	sess, err := s.gen.Play(answer, req.Attempts, req.HardMode)
	switch {
	case errors.Is(err, game.ErrInvalidAttempts):
		writeError(w, http.StatusBadRequest, "invalid_attempts")
		return
	case errors.Is(err, game.ErrConstraintExhausted), errors.Is(err, game.ErrTooManyRounds):
		log.Error().Err(err).Int("attempts", req.Attempts).Bool("hard", req.HardMode).Msg("generate grid")
		writeError(w, http.StatusInternalServerError, "generation_failed")
		return
	case err != nil:
		log.Error().Err(err).Msg("generate grid")
		writeError(w, http.StatusInternalServerError, "server_error")
		return
	}

	results := sess.Results()
	header := render.Header{Puzzle: daily.PuzzleNumber(s.clock()), Attempts: sess.Attempts, HardMode: sess.HardMode}
	marks := make([][]game.Mark, len(results))
	for i, res := range results {
		marks[i] = append([]game.Mark(nil), res[:]...)
	}
	level, _ := game.LevelFor(sess.Attempts)

	log.Debug().
		Int("puzzle", header.Puzzle).
		Int("attempts", sess.Attempts).
		Bool("hard", sess.HardMode).
		Int("rounds", sess.Rounds).
		Msg("generated grid")

	_ = json.NewEncoder(w).Encode(fraudRes{
		Puzzle:   header.Puzzle,
		Attempts: sess.Attempts,
		HardMode: sess.HardMode,
		Level:    level.Label,
		Text:     render.Text(results, header),
		Rows:     render.Rows(results),
		Marks:    marks,
		Rounds:   sess.Rounds,
		Message:  ShareMessage,
	})
}
