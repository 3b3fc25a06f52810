package api

import (
	"math/rand/v2"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/todoscontam/finlab/internal/assessment"
	"github.com/todoscontam/finlab/internal/catalog"
	"github.com/todoscontam/finlab/internal/logger"
	"github.com/todoscontam/finlab/internal/registry"
	"github.com/todoscontam/finlab/internal/store"
)

// seed picks the request's seed, then the server's fixed seed, then a
// random one.
func (s *Server) seed(requested *uint64) uint64 {
	switch {
	case requested != nil:
		return *requested
	case s.Seed != nil:
		return *s.Seed
	default:
		return rand.Uint64()
	}
}

func (s *Server) handleModules(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, registry.Chapters())
}

func (s *Server) handleListQuizzes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, s.Catalog.List())
}

type questionResponse struct {
	ID       string   `json:"id"`
	Category string   `json:"category"`
	Prompt   string   `json:"prompt"`
	Options  []string `json:"options"`
}

type quizResponse struct {
	ID        string             `json:"id"`
	Title     string             `json:"title"`
	Seed      string             `json:"seed"`
	Weighted  bool               `json:"weighted"`
	Questions []questionResponse `json:"questions"`
}

// startQuiz regenerates the quiz and draws its session from seed, so the
// same seed always yields the same questions.
func (s *Server) startQuiz(id string, seed uint64) (catalog.Quiz, assessment.Session, error) {
	q, err := s.Catalog.Get(id, seed)
	if err != nil {
		return catalog.Quiz{}, assessment.Session{}, err
	}
	sess, err := q.Start(&seed)
	if err != nil {
		return catalog.Quiz{}, assessment.Session{}, err
	}
	if sess.Total() == 0 {
		return catalog.Quiz{}, assessment.Session{}, NewValidationError("quiz", "quiz has no questions")
	}
	return q, sess, nil
}

func parseSeed(raw string) (*uint64, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil, NewValidationError("seed", "must be an unsigned integer")
	}
	return &v, nil
}

// handleGetQuiz returns a drawn session without answers. Seeds travel as
// strings because they can exceed the JSON safe integer range.
func (s *Server) handleGetQuiz(w http.ResponseWriter, r *http.Request) {
	requested, err := parseSeed(r.URL.Query().Get("seed"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	seed := s.seed(requested)
	q, sess, err := s.startQuiz(chi.URLParam(r, "id"), seed)
	if err != nil {
		handleError(w, r, err)
		return
	}

	resp := quizResponse{
		ID:       q.ID,
		Title:    q.Title,
		Seed:     strconv.FormatUint(seed, 10),
		Weighted: q.Pool.Weighted(),
	}
	for _, it := range sess.Selected() {
		resp.Questions = append(resp.Questions, questionResponse{
			ID:       it.ID,
			Category: it.Category,
			Prompt:   it.Prompt,
			Options:  it.Options,
		})
	}
	writeJSON(w, r, http.StatusOK, resp)
}

type submissionRequest struct {
	Seed    string   `json:"seed"`
	Answers []string `json:"answers"`
}

type categoryResponse struct {
	Category   string  `json:"category"`
	Correct    int     `json:"correct"`
	Total      int     `json:"total"`
	Points     int     `json:"points"`
	MaxPoints  int     `json:"max_points"`
	Percentage float64 `json:"percentage"`
}

type submissionResponse struct {
	ResultID   string             `json:"result_id,omitempty"`
	QuizID     string             `json:"quiz_id"`
	Correct    int                `json:"correct"`
	Total      int                `json:"total"`
	Points     int                `json:"points"`
	MaxPoints  int                `json:"max_points"`
	Percentage float64            `json:"percentage"`
	Tier       string             `json:"tier"`
	Message    string             `json:"message"`
	ByCategory []categoryResponse `json:"by_category"`
	Answers    []store.Answer     `json:"answers"`
	SaveFailed bool               `json:"save_failed,omitempty"`
}

// handleSubmit replays the answers against the session drawn from seed,
// scores it and stores the result.
func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromContext(ctx).WithPrefix("api")

	var req submissionRequest
	if err := decode(r, &req); err != nil {
		handleError(w, r, err)
		return
	}
	seed, err := strconv.ParseUint(req.Seed, 10, 64)
	if err != nil {
		handleError(w, r, NewValidationError("seed", "must be the seed the quiz was fetched with"))
		return
	}

	id := chi.URLParam(r, "id")
	q, sess, err := s.startQuiz(id, seed)
	if err != nil {
		handleError(w, r, err)
		return
	}
	if len(req.Answers) != sess.Total() {
		handleError(w, r, NewValidationError("answers",
			"expected "+strconv.Itoa(sess.Total())+" answers, got "+strconv.Itoa(len(req.Answers))))
		return
	}
	for _, a := range req.Answers {
		if sess, err = sess.Submit(a); err != nil {
			handleError(w, r, err)
			return
		}
	}

	result, err := assessment.Score(sess)
	if err != nil {
		handleError(w, r, err)
		return
	}
	tier := q.Tiers.Classify(result.Percentage)
	saved := store.NewResult(q.ID, seed, tier.Label, result)

	resp := submissionResponse{
		QuizID:     q.ID,
		Correct:    result.Correct,
		Total:      result.Total,
		Points:     result.Points,
		MaxPoints:  result.MaxPoints,
		Percentage: result.Percentage,
		Tier:       tier.Label,
		Message:    tier.Message,
		Answers:    saved.Answers,
	}
	for _, c := range result.ByCategory() {
		resp.ByCategory = append(resp.ByCategory, categoryResponse(c))
	}

	if s.Results != nil {
		if err := s.Results.Save(ctx, saved); err != nil {
			log.Error("failed to save result for %s: %v", q.ID, err)
			resp.SaveFailed = true
		} else {
			resp.ResultID = saved.ID
		}
	}
	log.WithFields(map[string]any{"quiz": q.ID, "percentage": result.Percentage}).Info("quiz submitted")
	writeJSON(w, r, http.StatusCreated, resp)
}

func (s *Server) handleListResults(w http.ResponseWriter, r *http.Request) {
	if s.Results == nil {
		writeJSON(w, r, http.StatusOK, []store.Result{})
		return
	}
	query := r.URL.Query()
	filter := store.ResultFilter{QuizID: query.Get("quiz")}
	if v, err := strconv.Atoi(query.Get("limit")); err == nil && v > 0 {
		filter.Limit = min(v, 100)
	}
	if v, err := strconv.Atoi(query.Get("offset")); err == nil && v > 0 {
		filter.Offset = v
	}
	if raw := query.Get("since"); raw != "" {
		since, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			handleError(w, r, NewValidationError("since", "must be an RFC 3339 timestamp"))
			return
		}
		filter.Since = since
	}

	results, err := s.Results.List(r.Context(), filter)
	if err != nil {
		handleError(w, r, err)
		return
	}
	if results == nil {
		results = []store.Result{}
	}
	writeJSON(w, r, http.StatusOK, results)
}

func (s *Server) handleGetResult(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if s.Results == nil {
		handleError(w, r, NewNotFoundError("result", id))
		return
	}
	res, err := s.Results.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, res)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	if s.Results == nil {
		writeJSON(w, r, http.StatusOK, []store.QuizStats{})
		return
	}
	stats, err := s.Results.Stats(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	if stats == nil {
		stats = []store.QuizStats{}
	}
	writeJSON(w, r, http.StatusOK, stats)
}
