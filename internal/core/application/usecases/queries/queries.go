// Package queries contains the read side. Handlers run plain SQL through GORM
// and return flat response structs; they never load aggregates.
package queries

import (
	"context"
	"errors"
	"strings"

	"meatmanager/internal/core/domain/model/kernel"
	"meatmanager/internal/pkg/errs"
	"meatmanager/internal/pkg/guard"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrRoundQueryIsNotConstructed = errors.New("RoundQuery must be created via NewRoundQuery constructor")

// RoundQuery addresses everything that is reported per round: shopping list,
// pack list, profit, dashboard and the order form.
type RoundQuery struct {
	roundID kernel.UUID

	guard guard.ConstructorGuard
}

func NewRoundQuery(roundID kernel.UUID) (RoundQuery, error) {
	if err := roundID.Validate(); err != nil {
		return RoundQuery{}, err
	}
	return RoundQuery{roundID: roundID, guard: guard.NewConstructorGuard()}, nil
}

func (q RoundQuery) Validate() error {
	return q.guard.Validate(ErrRoundQueryIsNotConstructed)
}

func (q RoundQuery) RoundID() kernel.UUID { return q.roundID }

func toKernelID(id uuid.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

// likePattern turns a search term into a lower-case LIKE pattern matching
// anywhere in the value. Blank terms yield "".
func likePattern(search string) string {
	search = strings.ToLower(strings.TrimSpace(search))
	if search == "" {
		return ""
	}
	return "%" + search + "%"
}

// loadRound returns errs.ErrObjectNotFound for unknown ids.
func loadRound(ctx context.Context, db *gorm.DB, roundID kernel.UUID) (RoundResponse, error) {
	var rows []roundRow
	if err := db.WithContext(ctx).Raw(roundSelect+` WHERE r.id = ?`, roundID.Bytes()).Scan(&rows).Error; err != nil {
		return RoundResponse{}, err
	}
	if len(rows) == 0 {
		return RoundResponse{}, errs.NewObjectNotFoundError("round", roundID.String())
	}
	return rows[0].toResponse()
}
