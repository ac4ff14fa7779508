package application

import (
	"sort"

	"github.com/disastercare/relief-hub/internal/domain/entity"
)

// donorTotal is the intermediate group produced by folding a donor's joined
// supplies: identity fields carried from the user plus the running sum and
// the contributing supplies. Only the projection in BuildLeaderboard leaves
// this package.
type donorTotal struct {
	User     entity.User
	Supplies []entity.Supply
	Total    float64
}

// foldDonorTotals joins donor users with their supplies on
// User.Email == Supply.DonatedBy and folds each group into a running total.
// Users whose role is not "donor" are excluded, and so is any donor with no
// matching supply: the join expands to (user, supply) pairs, so an empty
// join leaves nothing to group. A supply document without an amount carries
// 0 into the sum.
func foldDonorTotals(users []entity.User, supplies []entity.Supply) []donorTotal {
	byDonor := make(map[string][]entity.Supply)
	for _, s := range supplies {
		if s.DonatedBy == "" {
			continue
		}
		byDonor[s.DonatedBy] = append(byDonor[s.DonatedBy], s)
	}

	totals := make([]donorTotal, 0, len(users))
	for _, u := range users {
		if u.Role != entity.RoleDonor {
			continue
		}
		matched := byDonor[u.Email]
		if len(matched) == 0 {
			continue
		}
		var sum float64
		for _, s := range matched {
			sum += s.Amount
		}
		totals = append(totals, donorTotal{User: u, Supplies: matched, Total: sum})
	}
	return totals
}

// BuildLeaderboard produces the ranked public view of donors by total
// contribution: descending by total, ties keeping their prior order. The
// projection drops email, password hash, role, and the supplies themselves.
func BuildLeaderboard(users []entity.User, supplies []entity.Supply) []entity.LeaderboardEntry {
	totals := foldDonorTotals(users, supplies)

	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].Total > totals[j].Total
	})

	entries := make([]entity.LeaderboardEntry, 0, len(totals))
	for _, t := range totals {
		entries = append(entries, entity.LeaderboardEntry{
			ID:            t.User.ID,
			Name:          t.User.Name,
			Designation:   t.User.Designation,
			Image:         t.User.Image,
			TotalDonation: t.Total,
		})
	}
	return entries
}
