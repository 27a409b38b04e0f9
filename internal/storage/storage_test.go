package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/SeamusWaldron/slicecube"
)

type StorageSuite struct {
	suite.Suite
	db       *DB
	sessions *SessionRepository
	moves    *MoveRepository
	clock    time.Time
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	db, err := OpenAndMigrate(filepath.Join(s.T().TempDir(), "test.db"))
	s.Require().NoError(err)
	s.db = db

	s.clock = time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)
	s.sessions = NewSessionRepository(db)
	s.sessions.now = func() time.Time { return s.clock }
	s.moves = NewMoveRepository(db)
}

func (s *StorageSuite) TearDownTest() {
	s.Require().NoError(s.db.Close())
}

func (s *StorageSuite) TestMigrationsAreIdempotent() {
	v, err := s.db.CurrentVersion()
	s.Require().NoError(err)
	s.Equal(LatestVersion(), v)

	s.Require().NoError(s.db.MigrateUp())
	v, err = s.db.CurrentVersion()
	s.Require().NoError(err)
	s.Equal(LatestVersion(), v)
}

func (s *StorageSuite) TestCreateAndGetSession() {
	id, err := s.sessions.Create("1 7' 5", "warm up")
	s.Require().NoError(err)
	s.Len(id, 36)

	got, err := s.sessions.Get(id)
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Equal(id, got.SessionID)
	s.True(got.StartedAt.Equal(s.clock))
	s.Equal("1 7' 5", got.Scramble())
	s.Require().NotNil(got.Notes)
	s.Equal("warm up", *got.Notes)
	s.False(got.Ended())
	s.Nil(got.SolvedAt)
}

func (s *StorageSuite) TestGetMissingSession() {
	got, err := s.sessions.Get("nope")
	s.Require().NoError(err)
	s.Nil(got)

	last, err := s.sessions.GetLast()
	s.Require().NoError(err)
	s.Nil(last)
}

func (s *StorageSuite) TestEndSession() {
	id, err := s.sessions.Create("", "")
	s.Require().NoError(err)

	s.clock = s.clock.Add(90 * time.Second)
	s.Require().NoError(s.sessions.End(id))

	got, err := s.sessions.Get(id)
	s.Require().NoError(err)
	s.True(got.Ended())
	s.Require().NotNil(got.DurationMs)
	s.Equal(int64(90000), *got.DurationMs)
	s.Equal("", got.Scramble())

	s.Error(s.sessions.End("missing"))
}

func (s *StorageSuite) TestMarkSolvedKeepsFirstTime() {
	id, err := s.sessions.Create("", "")
	s.Require().NoError(err)

	first := s.clock.Add(time.Minute)
	s.Require().NoError(s.sessions.MarkSolved(id, first))
	s.Require().NoError(s.sessions.MarkSolved(id, first.Add(time.Minute)))

	got, err := s.sessions.Get(id)
	s.Require().NoError(err)
	s.Require().NotNil(got.SolvedAt)
	s.True(got.SolvedAt.Equal(first))
}

func (s *StorageSuite) TestListNewestFirst() {
	var ids []string
	for i := 0; i < 3; i++ {
		id, err := s.sessions.Create("", "")
		s.Require().NoError(err)
		ids = append(ids, id)
		s.clock = s.clock.Add(time.Second)
	}

	list, err := s.sessions.List(2)
	s.Require().NoError(err)
	s.Require().Len(list, 2)
	s.Equal(ids[2], list[0].SessionID)
	s.Equal(ids[1], list[1].SessionID)

	last, err := s.sessions.GetLast()
	s.Require().NoError(err)
	s.Equal(ids[2], last.SessionID)
}

func (s *StorageSuite) TestMovesRoundTrip() {
	id, err := s.sessions.Create("", "")
	s.Require().NoError(err)

	base := time.UnixMilli(1_700_000_000_000)
	moves := []slicecube.Move{
		slicecube.S1.WithTime(base),
		slicecube.S7Prime.WithTime(base.Add(300 * time.Millisecond)),
		slicecube.S5.WithTime(base.Add(900 * time.Millisecond)),
	}
	s.Require().NoError(s.moves.CreateBatch(id, moves, 0))

	next, err := s.moves.GetNextIndex(id)
	s.Require().NoError(err)
	s.Equal(3, next)

	_, err = s.moves.Create(id, next, slicecube.S9.WithTime(base.Add(time.Second)))
	s.Require().NoError(err)

	count, err := s.moves.Count(id)
	s.Require().NoError(err)
	s.Equal(4, count)

	records, err := s.moves.GetBySession(id)
	s.Require().NoError(err)
	s.Require().Len(records, 4)
	s.Equal("7'", records[1].Notation)

	got := ToMoves(records)
	s.Equal("1 7' 5 9", slicecube.FormatMoves(got))
	s.True(got[2].Time.Equal(base.Add(900 * time.Millisecond)))
}

func (s *StorageSuite) TestCreateBatchIsAtomic() {
	id, err := s.sessions.Create("", "")
	s.Require().NoError(err)

	bad := []slicecube.Move{slicecube.S1, {Direction: slicecube.CW, Slice: 0}}
	s.Error(s.moves.CreateBatch(id, bad, 0))

	count, err := s.moves.Count(id)
	s.Require().NoError(err)
	s.Zero(count)
}

func (s *StorageSuite) TestDuplicateIndexRejected() {
	id, err := s.sessions.Create("", "")
	s.Require().NoError(err)

	_, err = s.moves.Create(id, 0, slicecube.S1)
	s.Require().NoError(err)
	_, err = s.moves.Create(id, 0, slicecube.S2)
	s.Error(err)
}

func (s *StorageSuite) TestDeleteLast() {
	id, err := s.sessions.Create("", "")
	s.Require().NoError(err)
	s.Require().NoError(s.moves.CreateBatch(id, []slicecube.Move{slicecube.S2, slicecube.S3Prime}, 0))

	rec, err := s.moves.DeleteLast(id)
	s.Require().NoError(err)
	s.Require().NotNil(rec)
	s.Equal(1, rec.MoveIndex)
	s.True(rec.Move().SameTurn(slicecube.S3Prime))

	next, err := s.moves.GetNextIndex(id)
	s.Require().NoError(err)
	s.Equal(1, next)

	_, err = s.moves.DeleteLast(id)
	s.Require().NoError(err)
	rec, err = s.moves.DeleteLast(id)
	s.Require().NoError(err)
	s.Nil(rec)
}

func (s *StorageSuite) TestDeleteSessionCascades() {
	id, err := s.sessions.Create("", "")
	s.Require().NoError(err)
	s.Require().NoError(s.moves.CreateBatch(id, []slicecube.Move{slicecube.S4, slicecube.S6}, 0))

	s.Require().NoError(s.sessions.Delete(id))

	count, err := s.moves.Count(id)
	s.Require().NoError(err)
	s.Zero(count)
}

func (s *StorageSuite) TestMoveForeignKey() {
	_, err := s.moves.Create("no-such-session", 0, slicecube.S1)
	s.Error(err)
}
