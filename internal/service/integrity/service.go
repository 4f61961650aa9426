// Package integrity scans stored container trees for structural damage.
// It only reports; nothing is repaired.
package integrity

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/house-inventory-backend/internal/domain"
)

type treeReader interface {
	ListHouseIDs(ctx context.Context) ([]uuid.UUID, error)
	ListNodes(ctx context.Context, houseID uuid.UUID) ([]domain.TreeNode, error)
}

type txManager interface {
	RunInReadTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ProblemKind classifies a structural defect.
type ProblemKind string

const (
	// ProblemCycle: following parent links from the node never reaches a root.
	ProblemCycle ProblemKind = "CYCLE"
	// ProblemItemParent: the node's parent is an item.
	ProblemItemParent ProblemKind = "ITEM_PARENT"
	// ProblemForeignParent: the parent is missing from the node's house.
	ProblemForeignParent ProblemKind = "FOREIGN_PARENT"
)

// Problem is one defect found in a house.
type Problem struct {
	HouseID     uuid.UUID
	ContainerID uuid.UUID
	Kind        ProblemKind
	Detail      string
}

// Report summarises a scan.
type Report struct {
	Houses     int
	Containers int
	Problems   []Problem
}

// OK reports whether the scan found nothing.
func (r *Report) OK() bool { return len(r.Problems) == 0 }

// Service walks every house tree inside its own snapshot.
type Service struct {
	trees treeReader
	tx    txManager
	log   *slog.Logger
}

// NewService creates an integrity Service.
func NewService(log *slog.Logger, trees treeReader, tx txManager) *Service {
	return &Service{trees: trees, tx: tx, log: log.With("service", "integrity")}
}

// Scan checks every house. A storage failure aborts the scan; defects do not.
func (s *Service) Scan(ctx context.Context) (*Report, error) {
	houseIDs, err := s.trees.ListHouseIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list houses: %w", err)
	}

	report := &Report{Houses: len(houseIDs)}
	for _, houseID := range houseIDs {
		count, problems, err := s.ScanHouse(ctx, houseID)
		if err != nil {
			return nil, fmt.Errorf("house %s: %w", houseID, err)
		}
		report.Containers += count
		report.Problems = append(report.Problems, problems...)
	}

	s.log.InfoContext(ctx, "integrity scan completed",
		slog.Int("houses", report.Houses),
		slog.Int("containers", report.Containers),
		slog.Int("problems", len(report.Problems)),
	)
	return report, nil
}

// ScanHouse checks one house and returns its container count and defects.
func (s *Service) ScanHouse(ctx context.Context, houseID uuid.UUID) (int, []Problem, error) {
	var nodes []domain.TreeNode
	err := s.tx.RunInReadTx(ctx, func(txCtx context.Context) error {
		var err error
		nodes, err = s.trees.ListNodes(txCtx, houseID)
		return err
	})
	if err != nil {
		return 0, nil, fmt.Errorf("list nodes: %w", err)
	}

	problems := checkTree(houseID, nodes)
	for _, p := range problems {
		s.log.ErrorContext(ctx, "container tree defect",
			slog.String("house_id", p.HouseID.String()),
			slog.String("container_id", p.ContainerID.String()),
			slog.String("kind", string(p.Kind)),
			slog.String("detail", p.Detail),
		)
	}
	return len(nodes), problems, nil
}

// checkTree finds defects in one house's nodes. Each cycle is reported once,
// anchored at its smallest id; nodes hanging below a cycle are not reported.
func checkTree(houseID uuid.UUID, nodes []domain.TreeNode) []Problem {
	byID := make(map[uuid.UUID]domain.TreeNode, len(nodes))
	for _, n := range nodes {
		byID[n.ID] = n
	}

	var problems []Problem
	for _, n := range nodes {
		if n.ParentID == nil {
			continue
		}
		parent, ok := byID[*n.ParentID]
		switch {
		case !ok:
			problems = append(problems, Problem{
				HouseID: houseID, ContainerID: n.ID, Kind: ProblemForeignParent,
				Detail: fmt.Sprintf("parent %s is not in the house", *n.ParentID),
			})
		case parent.Type == domain.ContainerTypeItem:
			problems = append(problems, Problem{
				HouseID: houseID, ContainerID: n.ID, Kind: ProblemItemParent,
				Detail: fmt.Sprintf("parent %s is an item", parent.ID),
			})
		}
	}

	const (
		unvisited = iota
		walking
		done
	)
	state := make(map[uuid.UUID]int, len(nodes))
	for _, start := range nodes {
		if state[start.ID] != unvisited {
			continue
		}

		var (
			path   []uuid.UUID
			cyclic bool
		)
		cur := start
		for {
			if st := state[cur.ID]; st != unvisited {
				cyclic = st == walking
				break
			}
			state[cur.ID] = walking
			path = append(path, cur.ID)
			if cur.ParentID == nil {
				break
			}
			parent, ok := byID[*cur.ParentID]
			if !ok {
				break
			}
			cur = parent
		}

		if cyclic {
			at := slices.Index(path, cur.ID)
			problems = append(problems, cycleProblem(houseID, path[at:]))
		}
		for _, id := range path {
			state[id] = done
		}
	}
	return problems
}

func cycleProblem(houseID uuid.UUID, members []uuid.UUID) Problem {
	sorted := slices.Clone(members)
	slices.SortFunc(sorted, func(a, b uuid.UUID) int { return strings.Compare(a.String(), b.String()) })

	names := make([]string, len(members))
	for i, id := range members {
		names[i] = id.String()
	}
	return Problem{
		HouseID:     houseID,
		ContainerID: sorted[0],
		Kind:        ProblemCycle,
		Detail:      fmt.Sprintf("cycle of %d: %s", len(members), strings.Join(names, " -> ")),
	}
}
