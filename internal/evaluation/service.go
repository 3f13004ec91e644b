package evaluation

import (
	"context"
	"errors"

	"github.com/Adit10076/vetai-backend/internal/llm"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Service runs the recovery pipeline around one completion call:
//
//	complete -> repair -> validate
//
// Any failure short-circuits to the canned fallback. Callers always receive
// a complete evaluation and never learn which stage gave up; the logs do.
type Service struct {
	client llm.Client
}

func NewService(client llm.Client) *Service {
	return &Service{client: client}
}

// Evaluate runs one idea through the pipeline. It never returns an error:
// the worst outcome is the fallback evaluation.
func (s *Service) Evaluate(ctx context.Context, idea StartupIdea) *StartupEvaluation {
	log := logrus.WithFields(logrus.Fields{
		"evaluation_id": uuid.NewString(),
		"provider":      s.client.Name(),
		"title":         idea.Title,
	})

	raw, err := s.client.Complete(ctx, BuildPrompt(idea))
	if err != nil {
		log.WithField("stage", completionStage(err)).WithError(err).Warn("EVAL_FALLBACK")
		return Fallback()
	}

	repaired, ok := llm.Repair(raw)
	if !ok {
		log.WithFields(logrus.Fields{
			"stage":      "repair",
			"completion": raw,
		}).Warn("EVAL_FALLBACK")
		return Fallback()
	}

	eval, err := ParseEvaluation(repaired)
	if err != nil {
		fields := logrus.Fields{
			"stage":      "validate",
			"completion": raw,
		}
		var verr *ValidationError
		if errors.As(err, &verr) {
			fields["violations"] = verr.Fields
		}
		log.WithFields(fields).WithError(err).Warn("EVAL_FALLBACK")
		return Fallback()
	}

	log.Info("EVAL_OK")
	return eval
}

// Probe reports provider availability, for health checks.
func (s *Service) Probe(ctx context.Context) error {
	return s.client.Ping(ctx)
}

// Provider names the configured completion backend.
func (s *Service) Provider() string {
	return s.client.Name()
}

// completionStage maps a completion failure onto the pipeline stage that
// produced it, for the logs only.
func completionStage(err error) string {
	switch {
	case errors.Is(err, llm.ErrMissingCredentials):
		return "credentials"
	case errors.Is(err, llm.ErrAuthRejected):
		return "auth"
	case errors.Is(err, llm.ErrUnreachable):
		return "liveness"
	case errors.Is(err, llm.ErrEmptyResponse):
		return "empty"
	}
	var httpErr *llm.HTTPError
	if errors.As(err, &httpErr) {
		return "http"
	}
	return "completion"
}
