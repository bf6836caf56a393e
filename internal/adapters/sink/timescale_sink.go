package sink

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/maskor/spotlink/internal/domain"
	"github.com/maskor/spotlink/internal/ports"
)

// TimescaleSink archives assembled snapshots into a TimescaleDB hypertable,
// one row per snapshot keyed by robot name and acquisition time.
type TimescaleSink struct {
	db        *sql.DB
	tableName string
	robotName string
}

func NewTimescaleSink(db *sql.DB, table, robotName string) *TimescaleSink {
	return &TimescaleSink{db: db, tableName: table, robotName: robotName}
}

func (t *TimescaleSink) Name() string { return "timescaledb" }

func (t *TimescaleSink) WriteBatch(states []*domain.RobotState) error {
	if len(states) == 0 {
		return nil
	}

	var b strings.Builder
	b.WriteString("INSERT INTO ")
	b.WriteString(t.tableName)
	b.WriteString(" (robot, ts, state) VALUES ")

	args := make([]any, 0, len(states)*3)
	for i, s := range states {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(fmt.Sprintf("($%d,$%d,$%d)", len(args)+1, len(args)+2, len(args)+3))
		payload, err := json.Marshal(s)
		if err != nil {
			return fmt.Errorf("marshal snapshot: %w", err)
		}

		args = append(args, t.robotName, s.AcquisitionTime(), payload)
	}

	b.WriteString(" ON CONFLICT (robot, ts) DO NOTHING")

	_, err := t.db.Exec(b.String(), args...)
	return err
}

var _ ports.Sink = (*TimescaleSink)(nil)
