package inventory

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"jdgl-bk/internal/pkg/client/slurmrest/model"
	"jdgl-bk/internal/pkg/common/slurm"
	apierr "jdgl-bk/pkg/errors"
)

type fakeRawAPI struct {
	batch   model.RawNodeBatch
	node    *model.RawNode
	err     error
	calls   int
	updated *model.UpdateNodeMsg
}

func (f *fakeRawAPI) GetRawNodes(ctx context.Context, addr string) (model.RawNodeBatch, error) {
	f.calls++
	if f.err != nil {
		return model.RawNodeBatch{}, f.err
	}
	return f.batch, nil
}

func (f *fakeRawAPI) GetRawNode(ctx context.Context, addr, name string) (*model.RawNode, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.node, nil
}

func (f *fakeRawAPI) UpdateNode(ctx context.Context, addr string, msg model.UpdateNodeMsg) error {
	f.calls++
	f.updated = &msg
	return f.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testBatch() model.RawNodeBatch {
	idle := baseRaw()

	drained := baseRaw()
	drained.Name = "cn002"
	drained.NodeState = slurm.NODE_STATE_DOWN | slurm.NODE_STATE_DRAIN
	drained.Reason = "bad disk"
	drained.ReasonUID = slurm.NO_VAL

	return model.RawNodeBatch{
		LastUpdate: 1700000000,
		Nodes:      []*model.RawNode{idle, drained},
	}
}

func TestListDecodesRecords(t *testing.T) {
	fake := &fakeRawAPI{batch: testBatch()}
	svc := NewService(fake, testLogger())

	records, err := svc.List(context.Background(), "localhost:6820", BuildOpts{})
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Equal(t, "cn001", records[0].Name)
	require.Equal(t, "IDLE", records[0].State)
	require.Equal(t, "DOWN+DRAIN", records[1].State)
	require.Equal(t, []string{"DRAIN"}, records[1].StateFlags)
}

func TestListPropagatesManagerErrno(t *testing.T) {
	fake := &fakeRawAPI{err: apierr.NewLoad(-1, "Unable to contact slurm controller")}
	svc := NewService(fake, testLogger())

	_, err := svc.List(context.Background(), "localhost:6820", BuildOpts{})
	require.Error(t, err)
	require.True(t, apierr.IsLoad(err))

	var le *apierr.LoadError
	require.ErrorAs(t, err, &le)
	require.EqualValues(t, -1, le.Errno)
}

func TestListNames(t *testing.T) {
	fake := &fakeRawAPI{batch: testBatch()}
	svc := NewService(fake, testLogger())

	names, err := svc.ListNames(context.Background(), "localhost:6820")
	require.NoError(t, err)
	require.Equal(t, []string{"cn001", "cn002"}, names)
}

func TestGetNotFoundShape(t *testing.T) {
	fake := &fakeRawAPI{err: apierr.NewNotFound(2, "Invalid node name specified")}
	svc := NewService(fake, testLogger())

	_, err := svc.Get(context.Background(), "localhost:6820", "ghost", BuildOpts{})
	require.Error(t, err)
	require.True(t, apierr.IsNotFound(err))
}

func TestFindMatchesSubstringCaseSensitive(t *testing.T) {
	fake := &fakeRawAPI{batch: testBatch()}
	svc := NewService(fake, testLogger())

	matched, err := svc.Find(context.Background(), "localhost:6820", "state", "DRAIN", BuildOpts{})
	require.NoError(t, err)
	require.Len(t, matched, 1)
	require.Equal(t, "cn002", matched[0].Name)

	// 大小写敏感, 不做规范化; 空结果不是错误.
	matched, err = svc.Find(context.Background(), "localhost:6820", "state", "drain", BuildOpts{})
	require.NoError(t, err)
	require.Empty(t, matched)
}

func TestFindUnknownAttribute(t *testing.T) {
	fake := &fakeRawAPI{batch: testBatch()}
	svc := NewService(fake, testLogger())

	_, err := svc.Find(context.Background(), "localhost:6820", "bogus", "x", BuildOpts{})
	require.Error(t, err)
	require.True(t, apierr.IsValidation(err))
	require.Zero(t, fake.calls, "invalid attribute must not hit the wire")
}

func TestFindSkipsRecordsWithoutView(t *testing.T) {
	batch := testBatch()
	batch.Nodes[0].CoreSpecCnt = 2
	batch.Nodes[0].CPUSpecList = "0,1"

	fake := &fakeRawAPI{batch: batch}
	svc := NewService(fake, testLogger())

	matched, err := svc.Find(context.Background(), "localhost:6820", "cpu_spec_list", "0", BuildOpts{})
	require.NoError(t, err)
	require.Len(t, matched, 1)
	require.Equal(t, "cn001", matched[0].Name)
}

func TestFindNames(t *testing.T) {
	fake := &fakeRawAPI{batch: testBatch()}
	svc := NewService(fake, testLogger())

	names, err := svc.FindNames(context.Background(), "localhost:6820", "reason", "disk", BuildOpts{})
	require.NoError(t, err)
	require.Equal(t, []string{"cn002"}, names)
}
