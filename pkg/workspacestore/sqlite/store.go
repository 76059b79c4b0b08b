package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"codeberg.org/miketth/swaymon/pkg/monitors"
	"codeberg.org/miketth/swaymon/pkg/workspacestore/sqlite/migrations"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

type WorkspaceStore struct {
	db      *sql.DB
	querier *Queries
}

func NewWorkspaceStore(filename string, log *zap.SugaredLogger) (*WorkspaceStore, error) {
	db, err := sql.Open("sqlite3", filename+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if err := migrations.Migrate(db, log); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return &WorkspaceStore{
		db:      db,
		querier: New(db),
	}, nil
}

func (s *WorkspaceStore) Close() error {
	return s.db.Close()
}

func (s *WorkspaceStore) Load() (monitors.Document, error) {
	ctx := context.Background()

	workspaces, err := s.querier.ListWorkspaces(ctx)
	if err != nil {
		return monitors.Document{}, fmt.Errorf("sqlite select workspaces: %w", err)
	}
	profiles, err := s.querier.ListMonitorProfiles(ctx)
	if err != nil {
		return monitors.Document{}, fmt.Errorf("sqlite select monitor profiles: %w", err)
	}

	byWorkspace := make(map[int64][]monitors.MonitorProfile, len(workspaces))
	for _, p := range profiles {
		profile := monitors.MonitorProfile{
			Description: p.Description,
			State:       monitors.State(p.State),
			Transform:   monitors.Transform(p.Transform),
		}
		if p.PosX.Valid && p.PosY.Valid {
			profile.Position = &monitors.Position{X: int(p.PosX.Int64), Y: int(p.PosY.Int64)}
		}
		byWorkspace[p.WorkspaceID] = append(byWorkspace[p.WorkspaceID], profile)
	}

	doc := monitors.Document{Workspaces: make([]monitors.Workspace, 0, len(workspaces))}
	for _, ws := range workspaces {
		profiles := byWorkspace[ws.ID]
		if profiles == nil {
			profiles = []monitors.MonitorProfile{}
		}
		doc.Workspaces = append(doc.Workspaces, monitors.Workspace{Name: ws.Name, Monitors: profiles})
	}

	return doc, nil
}

// Save replaces the stored document in a single transaction.
func (s *WorkspaceStore) Save(doc monitors.Document) error {
	ctx := context.Background()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	q := s.querier.WithTx(tx)
	if err := q.DeleteMonitorProfiles(ctx); err != nil {
		return fmt.Errorf("sqlite delete monitor profiles: %w", err)
	}
	if err := q.DeleteWorkspaces(ctx); err != nil {
		return fmt.Errorf("sqlite delete workspaces: %w", err)
	}

	for i, ws := range doc.Workspaces {
		id, err := q.InsertWorkspace(ctx, ws.Name, int64(i))
		if err != nil {
			return fmt.Errorf("sqlite insert workspace %q: %w", ws.Name, err)
		}

		for j, m := range ws.Monitors {
			row := MonitorProfileRow{
				WorkspaceID: id,
				Ordinal:     int64(j),
				Description: m.Description,
				State:       string(m.State),
				Transform:   string(m.Transform),
			}
			if m.Position != nil {
				row.PosX = sql.NullInt64{Int64: int64(m.Position.X), Valid: true}
				row.PosY = sql.NullInt64{Int64: int64(m.Position.Y), Valid: true}
			}
			if err := q.InsertMonitorProfile(ctx, row); err != nil {
				return fmt.Errorf("sqlite insert monitor profile %q: %w", m.Description, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
