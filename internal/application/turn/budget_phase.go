package turn

import (
	"github.com/nexusforge/starforge-engine/internal/domain/colony"
	"github.com/nexusforge/starforge-engine/internal/domain/contract"
	"github.com/nexusforge/starforge-engine/internal/domain/corporation"
	"github.com/nexusforge/starforge-engine/internal/domain/formula"
	"github.com/nexusforge/starforge-engine/internal/domain/mission"
	"github.com/nexusforge/starforge-engine/internal/domain/shared"
	"github.com/nexusforge/starforge-engine/internal/domain/state"
)

// runBudgetPhase runs income, expense, and debt accrual as one silent
// pass (spec §4.9: no events). Income sums planetTax across colonies and
// corpTax across corps; expense sums bpPerTurn across every still-active
// contract and mission; a resulting deficit mints debt tokens.
func runBudgetPhase(s state.GameState, logger shared.Logger) state.GameState {
	next := s.Clone()
	var breakdown []state.BudgetEntry

	incomeTotal := 0
	for _, colonyID := range colony.OrderedIDs(next.Colonies) {
		c := next.Colonies[colonyID]
		tax := formula.PlanetTax(c.PopulationLevel(), c.Attributes().Habitability)
		if tax == 0 {
			continue
		}
		breakdown = append(breakdown, state.BudgetEntry{Label: "planet tax: " + string(colonyID), Amount: tax})
		incomeTotal += tax
	}
	for _, corpID := range corporation.OrderedForProcessing(next.Corporations) {
		corp := next.Corporations[corpID]
		tax := formula.CorpTax(corp.Level())
		if tax == 0 {
			continue
		}
		breakdown = append(breakdown, state.BudgetEntry{Label: "corp tax: " + string(corpID), Amount: tax})
		incomeTotal += tax
	}

	expenseTotal := 0
	for _, contractID := range contract.OrderedIDs(next.Contracts) {
		c := next.Contracts[contractID]
		if !c.IsActive() {
			continue
		}
		breakdown = append(breakdown, state.BudgetEntry{Label: "contract expense: " + string(contractID), Amount: -c.BPPerTurn()})
		expenseTotal += c.BPPerTurn()
	}
	for _, missionID := range mission.OrderedIDs(next.Missions) {
		m := next.Missions[missionID]
		if !m.IsActive() {
			continue
		}
		breakdown = append(breakdown, state.BudgetEntry{Label: "mission expense: " + string(missionID), Amount: -m.BPPerTurn()})
		expenseTotal += m.BPPerTurn()
	}

	next.BudgetBreakdown = breakdown
	next.CurrentBP = next.CurrentBP + incomeTotal - expenseTotal

	if next.CurrentBP < 0 {
		deficit := -next.CurrentBP
		newTokens := deficit / 3
		if newTokens < 1 {
			newTokens = 1
		}
		next.DebtTokens = next.DebtTokens + newTokens
		if next.DebtTokens > 10 {
			next.DebtTokens = 10
		}
	}

	logger.Log("debug", "budget phase complete", map[string]interface{}{
		"turn": next.Turn, "currentBP": next.CurrentBP, "debtTokens": next.DebtTokens,
	})
	return next
}
