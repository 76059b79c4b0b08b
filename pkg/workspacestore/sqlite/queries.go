package sqlite

import (
	"context"
	"database/sql"
)

type DBTX interface {
	ExecContext(context.Context, string, ...interface{}) (sql.Result, error)
	QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error)
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

type Queries struct {
	db DBTX
}

func (q *Queries) WithTx(tx *sql.Tx) *Queries {
	return &Queries{db: tx}
}

type WorkspaceRow struct {
	ID      int64
	Name    string
	Ordinal int64
}

const listWorkspaces = `SELECT id, name, ordinal FROM workspaces ORDER BY ordinal`

func (q *Queries) ListWorkspaces(ctx context.Context) ([]WorkspaceRow, error) {
	rows, err := q.db.QueryContext(ctx, listWorkspaces)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []WorkspaceRow
	for rows.Next() {
		var i WorkspaceRow
		if err := rows.Scan(&i.ID, &i.Name, &i.Ordinal); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

type MonitorProfileRow struct {
	WorkspaceID int64
	Ordinal     int64
	Description string
	State       string
	Transform   string
	PosX        sql.NullInt64
	PosY        sql.NullInt64
}

const listMonitorProfiles = `SELECT workspace_id, ordinal, description, state, transform, pos_x, pos_y
FROM monitor_profiles ORDER BY workspace_id, ordinal`

func (q *Queries) ListMonitorProfiles(ctx context.Context) ([]MonitorProfileRow, error) {
	rows, err := q.db.QueryContext(ctx, listMonitorProfiles)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []MonitorProfileRow
	for rows.Next() {
		var i MonitorProfileRow
		if err := rows.Scan(&i.WorkspaceID, &i.Ordinal, &i.Description, &i.State, &i.Transform, &i.PosX, &i.PosY); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const deleteMonitorProfiles = `DELETE FROM monitor_profiles`

func (q *Queries) DeleteMonitorProfiles(ctx context.Context) error {
	_, err := q.db.ExecContext(ctx, deleteMonitorProfiles)
	return err
}

const deleteWorkspaces = `DELETE FROM workspaces`

func (q *Queries) DeleteWorkspaces(ctx context.Context) error {
	_, err := q.db.ExecContext(ctx, deleteWorkspaces)
	return err
}

const insertWorkspace = `INSERT INTO workspaces (name, ordinal) VALUES (?, ?)`

func (q *Queries) InsertWorkspace(ctx context.Context, name string, ordinal int64) (int64, error) {
	res, err := q.db.ExecContext(ctx, insertWorkspace, name, ordinal)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

const insertMonitorProfile = `INSERT INTO monitor_profiles
(workspace_id, ordinal, description, state, transform, pos_x, pos_y)
VALUES (?, ?, ?, ?, ?, ?, ?)`

func (q *Queries) InsertMonitorProfile(ctx context.Context, arg MonitorProfileRow) error {
	_, err := q.db.ExecContext(ctx, insertMonitorProfile,
		arg.WorkspaceID,
		arg.Ordinal,
		arg.Description,
		arg.State,
		arg.Transform,
		arg.PosX,
		arg.PosY,
	)
	return err
}
