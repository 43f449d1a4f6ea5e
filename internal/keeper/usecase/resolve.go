package usecase

import (
	"slices"
	"strings"

	"github.com/rroethle7474/JCL2025-Roster/internal/keeper/entity"
)

// BuildNameIndex maps each roster name to its identifier. Names are matched
// exactly as written; when a name occurs more than once the last row wins.
// Empty names are never indexed.
//
// A name that maps to more than one distinct identifier is returned as a
// DUPLICATE_NAME finding. The index itself still follows last-write-wins.
func BuildNameIndex(roster []entity.RosterRecord) (map[string]string, []entity.Finding) {
	index := make(map[string]string, len(roster))
	ids := make(map[string][]string, len(roster))
	var collided []string

	for _, rec := range roster {
		if rec.Player == "" {
			continue
		}

		seen := ids[rec.Player]
		if !slices.Contains(seen, rec.PlayerID) {
			if len(seen) == 1 {
				collided = append(collided, rec.Player)
			}
			ids[rec.Player] = append(seen, rec.PlayerID)
		}
		index[rec.Player] = rec.PlayerID
	}

	findings := make([]entity.Finding, 0, len(collided))
	for _, name := range collided {
		findings = append(findings, entity.Finding{
			Kind:     entity.FindingDuplicateName,
			Source:   entity.SourceRoster,
			Player:   name,
			PlayerID: index[name],
			Value:    strings.Join(ids[name], "|"),
		})
	}

	return index, findings
}

// ResolveKeepers attaches an identifier to every keeper whose name is in the
// index. Keepers that do not match keep a nil PlayerID and are returned as
// UNRESOLVED_PLAYER findings.
func ResolveKeepers(keepers []entity.KeeperRecord, index map[string]string) []entity.Finding {
	var unresolved []entity.Finding

	for i := range keepers {
		keepers[i].PlayerID = nil

		id, ok := index[keepers[i].Player]
		if !ok || keepers[i].Player == "" {
			unresolved = append(unresolved, entity.Finding{
				Kind:   entity.FindingUnresolvedPlayer,
				Source: entity.SourceKeepers,
				Row:    keepers[i].Row,
				Player: keepers[i].Player,
				Team:   keepers[i].Team,
			})
			continue
		}

		keepers[i].PlayerID = &id
	}

	return unresolved
}
