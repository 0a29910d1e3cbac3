package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/heversonalves/canon/internal/dto"
	"github.com/heversonalves/canon/internal/entity"
)

// Didaskalos is the method-guidance assistant. Answer generation proper lives
// in an external service; this implements the interface contract with the
// same local guidance stub the original backend ships, so the frontend works
// without the external dependency.
type IDidaskalosService interface {
	Query(ctx context.Context, req *dto.DidaskalosQueryRequest) (*dto.DidaskalosQueryResponse, error)
}

type didaskalosService struct{}

func NewDidaskalosService() IDidaskalosService {
	return &didaskalosService{}
}

// Portuguese stems covering sermão/aplicação/pregação variants.
var applicationTokens = []string{"serm", "aplica", "prega"}

func (s *didaskalosService) Query(ctx context.Context, req *dto.DidaskalosQueryRequest) (*dto.DidaskalosQueryResponse, error) {
	stage := entity.StudyStage(req.Context.Stage)
	if !stage.Valid() {
		stage = entity.StageObservation
	}

	warning := ""
	if stage.Ordinal() < entity.StageTheology.Ordinal() && containsAny(req.Query, applicationTokens) {
		warning = "Warning: do not advance to application or homiletics before completing interpretation stages."
	}

	book := req.Context.Book
	if book == "" {
		book = "text"
	}
	chapter := ""
	if req.Context.Chapter > 0 {
		chapter = fmt.Sprintf("%d", req.Context.Chapter)
	}

	answer := fmt.Sprintf(
		"Method guidance for %s %s: focus on %s and let the biblical text govern your next step.",
		book, chapter, stage,
	)
	return &dto.DidaskalosQueryResponse{Answer: answer, Warning: warning}, nil
}

func containsAny(query string, tokens []string) bool {
	lowered := strings.ToLower(query)
	for _, token := range tokens {
		if strings.Contains(lowered, token) {
			return true
		}
	}
	return false
}
