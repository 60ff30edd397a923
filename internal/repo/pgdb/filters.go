package pgdb

import (
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/logtrail/logtrail/internal/repo/repotypes"
)

// BuildLogConds translates the optional filter criteria into squirrel
// predicates. A single level/tag matches case-insensitively, a list matches
// any of the set. Search replaces the user/level/tag criteria with one
// disjunctive substring match over message, user, tag and level; the
// timestamp bounds stay conjunctive either way.
func BuildLogConds(filter repotypes.LogFilter) []sq.Sqlizer {
	conds := []sq.Sqlizer{}

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		conds = append(conds, sq.Or{
			sq.ILike{"message": pattern},
			sq.ILike{"user_id": pattern},
			sq.ILike{"tag": pattern},
			sq.ILike{"level": pattern},
		})
	} else {
		if filter.UserID != "" {
			conds = append(conds, sq.ILike{"user_id": "%" + filter.UserID + "%"})
		}

		switch len(filter.Levels) {
		case 0:
		case 1:
			conds = append(conds, sq.ILike{"level": filter.Levels[0]})
		default:
			lowered := make([]string, 0, len(filter.Levels))
			for _, level := range filter.Levels {
				lowered = append(lowered, strings.ToLower(level))
			}
			conds = append(conds, sq.Eq{"lower(level)": lowered})
		}

		switch len(filter.Tags) {
		case 0:
		case 1:
			conds = append(conds, sq.ILike{"tag": filter.Tags[0]})
		default:
			conds = append(conds, sq.Eq{"tag": filter.Tags})
		}
	}

	if filter.PackageName != "" {
		conds = append(conds, sq.Eq{"package_name": filter.PackageName})
	}

	if !filter.From.IsZero() {
		conds = append(conds, sq.GtOrEq{"ts": filter.From})
	}
	if !filter.To.IsZero() {
		conds = append(conds, sq.LtOrEq{"ts": filter.To})
	}

	return conds
}
