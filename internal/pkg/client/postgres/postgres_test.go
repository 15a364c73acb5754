package postgres

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"

	apierr "jdgl-bk/pkg/errors"
)

// fakePool 只实现测试用到的查询入口, 其余方法继承接口零值(调用即 panic).
type fakePool struct {
	Pool
	row  *fakeRow
	rows *fakeRows
}

func (p *fakePool) QueryRow(context.Context, string, ...any) pgx.Row { return p.row }

func (p *fakePool) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return p.rows, nil
}

type fakeRow struct {
	values []any
	err    error
}

func (r *fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	return scanInto(dest, r.values)
}

type fakeRows struct {
	pgx.Rows
	data [][]any
	idx  int
}

func (r *fakeRows) Close()     {}
func (r *fakeRows) Err() error { return nil }

func (r *fakeRows) Next() bool {
	if r.idx >= len(r.data) {
		return false
	}
	r.idx++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	return scanInto(dest, r.data[r.idx-1])
}

// scanInto 按列拷贝测试数据; nil 源值表示 SQL NULL, 保持目标零值.
func scanInto(dest, src []any) error {
	for i, v := range src {
		if v == nil {
			continue
		}
		switch d := dest[i].(type) {
		case *string:
			*d = v.(string)
		case *bool:
			*d = v.(bool)
		default:
			// sql.Null* 实现 sql.Scanner
			if sc, ok := dest[i].(interface{ Scan(any) error }); ok {
				if err := sc.Scan(v); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func clusterRow(name string) []any {
	return []any{name, "10.0.0.5:6820", true, int64(4),
		"10.0.0.6", int64(3306), "slurm_acct_db", "slurm", "secret"}
}

func TestGetCluster(t *testing.T) {
	c := NewWithPool(&fakePool{row: &fakeRow{values: clusterRow("hpc1")}})

	cl, err := c.GetCluster(context.Background(), "hpc1")
	require.NoError(t, err)
	require.Equal(t, "hpc1", cl.Name)
	require.Equal(t, "10.0.0.5:6820", cl.RestAddr)
	require.True(t, cl.GridTopology)
	require.Equal(t, uint32(4), cl.NodeScaling)
	require.Equal(t, uint16(3306), cl.DBPort)
	require.True(t, cl.HasEventDB())
}

func TestGetClusterNotRegistered(t *testing.T) {
	c := NewWithPool(&fakePool{row: &fakeRow{err: pgx.ErrNoRows}})

	_, err := c.GetCluster(context.Background(), "nope")
	require.True(t, apierr.IsNotFound(err), "got %v", err)
}

func TestGetClusterNullEventDB(t *testing.T) {
	row := []any{"hpc2", "10.0.1.5:6820", false, nil, nil, nil, nil, nil, nil}
	c := NewWithPool(&fakePool{row: &fakeRow{values: row}})

	cl, err := c.GetCluster(context.Background(), "hpc2")
	require.NoError(t, err)
	require.False(t, cl.HasEventDB())
	require.Zero(t, cl.NodeScaling)
}

func TestListClusters(t *testing.T) {
	rows := &fakeRows{data: [][]any{clusterRow("hpc1"), clusterRow("hpc2")}}
	c := NewWithPool(&fakePool{rows: rows})

	clusters, err := c.ListClusters(context.Background())
	require.NoError(t, err)
	require.Len(t, clusters, 2)
	require.Equal(t, "hpc1", clusters[0].Name)
	require.Equal(t, "hpc2", clusters[1].Name)
}
