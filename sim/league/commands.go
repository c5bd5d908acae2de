package league

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"

	"github.com/hoopsim/hoopsim/sim"
	"github.com/hoopsim/hoopsim/sim/career"
	"github.com/hoopsim/hoopsim/sim/economy"
	"github.com/hoopsim/hoopsim/sim/trace"
)

// Negotiate runs one round of contract talks between the user team teamID
// and a player.
// The result is OK only when the player accepts; the response carries the
// player's answer either way.
func (e *Engine) Negotiate(playerID, teamID string, offer economy.Offer) (Result, economy.Response) {
	var resp economy.Response
	res := e.transact("negotiate", func() Result {
		p := e.state.Player(playerID)
		if p == nil || p.TeamID == sim.DraftTeamID {
			return fail("Player %s not found.", playerID)
		}
		if r := e.checkOffer(teamID, offer); !r.OK {
			return r
		}
		resp = economy.Negotiate(p, teamID, offer, e.cfg.Economy)
		return Result{OK: resp.Status == economy.StatusAccept, Message: resp.Message}
	})
	return res, resp
}

// checkOffer admits offers from the user team only. AI franchises sign
// through free agency and renewals.
func (e *Engine) checkOffer(teamID string, offer economy.Offer) Result {
	if t := e.state.Team(teamID); t == nil || teamID == sim.FreeAgentTeamID {
		return fail("Unknown team %s.", teamID)
	}
	if teamID != e.state.UserTeamID {
		return fail("Only your team can negotiate contracts.")
	}
	if offer.Amount <= 0 || offer.Years < 1 {
		return fail("An offer needs a positive salary and at least one year.")
	}
	return ok("")
}

// SignPlayer offers a contract and signs the player when the negotiation
// accepts. The salary cap is checked before talks so a cap violation costs
// no patience.
func (e *Engine) SignPlayer(playerID, teamID string, offer economy.Offer) Result {
	return e.transact("sign-player", func() Result {
		s := e.state
		p := s.Player(playerID)
		if p == nil || p.TeamID == sim.DraftTeamID {
			return fail("Player %s not found.", playerID)
		}
		if r := e.checkOffer(teamID, offer); !r.OK {
			return r
		}
		payroll := s.Payroll(teamID)
		if p.TeamID == teamID {
			payroll -= p.Salary
		}
		if payroll+offer.Amount > s.SalaryCap {
			return fail("Over the salary cap: payroll would be $%.2fM against a $%.1fM cap.", payroll+offer.Amount, s.SalaryCap)
		}
		resp := economy.Negotiate(p, teamID, offer, e.cfg.Economy)
		if resp.Status != economy.StatusAccept {
			// Patience spent on a rejected offer stays spent.
			return Result{OK: false, Message: resp.Message}
		}
		signed, msg := economy.Sign(s, p, teamID, offer.Amount, offer.Years)
		if !signed {
			return fail("%s", msg)
		}
		e.recordSignings([]economy.Signing{{PlayerID: p.ID, TeamID: teamID, Salary: offer.Amount, Years: offer.Years}}, "user")
		if p.Rating >= 78 {
			s.AddNews(fmt.Sprintf("SIGNING: %s agree to terms with %s (OVR %d).", s.TeamName(teamID), p.Name(), p.Rating))
		}
		return ok("%s", msg)
	})
}

// ReleasePlayer waives a player of the user team to free agency.
func (e *Engine) ReleasePlayer(playerID string) Result {
	return e.transact("release-player", func() Result {
		s := e.state
		p := s.Player(playerID)
		if p == nil || s.UserTeamID == "" || p.TeamID != s.UserTeamID {
			return fail("Player %s is not on your roster.", playerID)
		}
		from := p.TeamID
		economy.Release(s, p, e.cfg.Economy)
		e.trace.RecordRelease(trace.ReleaseRecord{Date: s.DateStamp(), PlayerID: p.ID, TeamID: from, Reason: "released"})
		return ok("%s released to free agency.", p.Name())
	})
}

// ProposeTrade offers assetsA of teamA for assetsB of teamB. Team B decides
// by trade value. The trade executes only when ownership, the salary cap
// rule and team B's fairness check all pass.
func (e *Engine) ProposeTrade(teamA string, assetsA []string, teamB string, assetsB []string) Result {
	return e.transact("propose-trade", func() Result {
		s := e.state
		if len(assetsA) == 0 && len(assetsB) == 0 {
			return fail("A trade needs at least one asset.")
		}
		offered, err := ResolveAssets(s, assetsA)
		if err != nil {
			return fail("%v", err)
		}
		requested, err := ResolveAssets(s, assetsB)
		if err != nil {
			return fail("%v", err)
		}
		pr := economy.Proposal{TeamA: teamA, AssetsA: offered, TeamB: teamB, AssetsB: requested}
		if valid, why := economy.CheckOwnership(s, pr); !valid {
			return fail("%s", why)
		}
		if valid, why := economy.ValidateTrade(s, pr, e.cfg.Economy); !valid {
			return fail("%s", why)
		}
		f := economy.EvaluateFairness(s, offered, requested)
		if !f.Accept {
			return fail("%s decline: offer worth %.0f, they want %d.", s.TeamName(teamB), f.Offer, f.Ask)
		}
		valueA, valueB := economy.TotalValue(s, offered), economy.TotalValue(s, requested)
		economy.ExecuteTrade(s, pr)
		e.recordTrade("user", pr, valueA, valueB)
		s.AddNews(fmt.Sprintf("TRADE: %s and %s complete a %d-for-%d deal.", s.TeamName(teamA), s.TeamName(teamB), len(offered), len(requested)))
		return ok("Trade accepted by %s.", s.TeamName(teamB))
	})
}

// FindTrades lists packages AI teams would give the user team for offered.
// It never mutates the league.
func (e *Engine) FindTrades(offered []string) ([]economy.Candidate, Result) {
	var out []economy.Candidate
	res := e.transact("find-trades", func() Result {
		s := e.state
		if s.Team(s.UserTeamID) == nil {
			return fail("No user team.")
		}
		assets, err := ResolveAssets(s, offered)
		if err != nil {
			return fail("%v", err)
		}
		if len(assets) == 0 {
			return fail("Offer at least one asset.")
		}
		user := s.Team(s.UserTeamID)
		for _, a := range assets {
			switch a := a.(type) {
			case economy.PlayerAsset:
				if a.Player.TeamID != user.ID {
					return fail("%s is not on your roster.", a.Player.Name())
				}
			case economy.PickAsset:
				if !user.HasPick(a.Pick) {
					return fail("You do not own pick %s.", PickRef(a.Pick))
				}
			}
		}
		out = economy.FindPotentialTrades(s, s.UserTeamID, assets, e.cfg.Economy)
		limit := e.cfg.Economy.PotentialTradeResults
		if limit > 0 && len(out) > limit {
			out = out[:limit]
		}
		return ok("%d potential trades found.", len(out))
	})
	return out, res
}

// ScoutPlayer spends scouting points to reveal a draft prospect.
func (e *Engine) ScoutPlayer(playerID string) Result {
	return e.transact("scout", func() Result {
		done, msg := career.Scout(e.state, playerID, e.cfg.Season.ScoutCost)
		return Result{OK: done, Message: msg}
	})
}

// InitDraft opens the draft. The league must be in the offseason.
func (e *Engine) InitDraft() Result {
	return e.transact("init-draft", e.initDraft)
}

func (e *Engine) initDraft() Result {
	if ph := e.state.Phase(); ph != sim.PhaseOffseason {
		return fail("The draft opens in the offseason (now %s).", ph)
	}
	career.InitDraft(e.state, e.cfg, e.rng(sim.SubsystemDraft))
	return ok("The %d draft is open: %d prospects, %d picks.", e.state.SeasonYear, len(e.state.DraftClass), len(e.state.DraftOrder))
}

// DraftPick resolves the current pick. An empty playerID lets the slot owner
// pick automatically; a named player may only be taken on the user's pick.
// The final pick closes the draft and schedules the next season.
func (e *Engine) DraftPick(playerID string) Result {
	return e.transact("draft-pick", func() Result {
		sel, err := career.Pick(e.state, playerID, e.rng(sim.SubsystemDraft))
		if err != nil {
			return fail("%v", err)
		}
		return e.afterPick(sel)
	})
}

// SimDraft auto-picks for every slot until the user is on the clock or the
// draft ends. With throughUser set the user's picks are automated too.
func (e *Engine) SimDraft(throughUser bool) Result {
	return e.transact("sim-draft", func() Result { return e.simDraft(throughUser) })
}

func (e *Engine) simDraft(throughUser bool) Result {
	s := e.state
	if !s.IsDraftActive {
		return fail("%v", career.ErrDraftInactive)
	}
	picks := 0
	for s.IsDraftActive {
		if !throughUser && s.UserTeamID != "" && career.CurrentOwner(s) == s.UserTeamID {
			return ok("%d picks made. You are on the clock.", picks)
		}
		sel, err := career.Pick(s, "", e.rng(sim.SubsystemDraft))
		if err != nil {
			panic(err)
		}
		picks++
		if r := e.afterPick(sel); sel.Final {
			return ok("%d picks made. %s", picks, r.Message)
		}
	}
	return ok("%d picks made.", picks)
}

func (e *Engine) afterPick(sel career.Selection) Result {
	s := e.state
	if sel.PlayerID != "" {
		e.trace.RecordPick(trace.DraftRecord{
			Date:     s.DateStamp(),
			Overall:  sel.Overall,
			Round:    sel.Round,
			Pick:     sel.Pick,
			TeamID:   sel.TeamID,
			PlayerID: sel.PlayerID,
			Auto:     sel.Auto,
		})
		e.metrics.recordDraftPick()
	}
	msg := fmt.Sprintf("%s pick: %s selects %s.", humanize.Ordinal(sel.Overall), s.TeamName(sel.TeamID), playerLabel(s, sel.PlayerID))
	if !sel.Final {
		return ok("%s", msg)
	}
	signings := career.FinishDraft(s, e.cfg, e.rngs)
	e.recordSignings(signings, "offseason")
	s.AddNews(fmt.Sprintf("DRAFT: the %d draft is complete. The new season is scheduled.", s.SeasonYear))
	return ok("%s The draft is complete.", msg)
}

func playerLabel(s *sim.LeagueState, id string) string {
	if p := s.Player(id); p != nil {
		return p.Name()
	}
	return "nobody"
}

// StartNewSeason runs the season transition once the champion is crowned:
// aging, retirement, progression, renewals, contract expiry and the new
// rookie class. The league moves into the offseason.
func (e *Engine) StartNewSeason() (Result, *career.Report) {
	var rep *career.Report
	res := e.transact("start-new-season", func() Result {
		var res Result
		res, rep = e.startNewSeason()
		return res
	})
	return res, rep
}

func (e *Engine) startNewSeason() (Result, *career.Report) {
	s := e.state
	if ph := s.Phase(); ph != sim.PhaseSeasonComplete {
		return fail("The season is not over yet (%s).", ph), nil
	}
	if _, archived := career.RecordAwards(s); archived {
		logrus.Warnf("season %d: awards archived late", s.SeasonYear)
	}
	r := career.StartNewSeason(s, e.cfg, e.rngs)
	e.afterSeasonStart(r)
	return ok("Welcome to the %d season: %d retirements, %d rookies.", s.SeasonYear, len(r.Retirements), r.Rookies), &r
}

func (e *Engine) afterSeasonStart(r career.Report) {
	s := e.state
	for _, rt := range r.Retirements {
		e.trace.RecordRelease(trace.ReleaseRecord{Date: s.DateStamp(), PlayerID: rt.PlayerID, TeamID: rt.TeamID, Reason: "retired"})
		if rt.HallOfFame != nil && s.UserTeamID != "" && rt.TeamID == s.UserTeamID {
			addScore(s, scoreHallOfFame, "Hall of Fame: "+rt.Name)
			unlock(s, AchLegendMaker)
		}
	}
	e.metrics.recordRetirements(len(r.Retirements))
	for _, id := range r.Expired {
		e.trace.RecordRelease(trace.ReleaseRecord{Date: s.DateStamp(), PlayerID: id, Reason: "expired"})
	}
	renewals := make([]economy.Signing, 0, len(r.Renewals))
	for _, rn := range r.Renewals {
		renewals = append(renewals, economy.Signing{PlayerID: rn.PlayerID, TeamID: rn.TeamID, Salary: rn.Salary, Years: rn.Years})
	}
	e.recordSignings(renewals, "renewal")
	checkSniper(s)
}
