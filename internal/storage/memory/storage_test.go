package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/jtarrant/wanttogo/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

func (s *StorageSuite) saveAlice() {
	err := s.storage.SaveUser(s.ctx, &model.User{
		Username:     "alice",
		Password:     "pw1",
		WantToGoList: []model.DestinationCode{},
		CreatedAt:    time.Now(),
	})
	s.Require().NoError(err)
}

// User tests

func (s *StorageSuite) TestSaveAndGetUser() {
	s.saveAlice()

	user, err := s.storage.GetUser(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal("alice", user.Username)
	s.Equal("pw1", user.Password)
}

func (s *StorageSuite) TestGetUserNotFound() {
	_, err := s.storage.GetUser(s.ctx, "nobody")
	s.ErrorIs(err, model.ErrUserNotFound)
}

func (s *StorageSuite) TestDeleteUser() {
	s.saveAlice()

	err := s.storage.DeleteUser(s.ctx, "alice")
	s.Require().NoError(err)

	_, err = s.storage.GetUser(s.ctx, "alice")
	s.ErrorIs(err, model.ErrUserNotFound)
}

func (s *StorageSuite) TestGetUserReturnsCopy() {
	s.saveAlice()

	user, _ := s.storage.GetUser(s.ctx, "alice")
	user.WantToGoList = append(user.WantToGoList, "bali")

	again, _ := s.storage.GetUser(s.ctx, "alice")
	s.Empty(again.WantToGoList)
}

// Want-to-go list tests

func (s *StorageSuite) TestAddWantToGo() {
	s.saveAlice()

	err := s.storage.AddWantToGo(s.ctx, "alice", "bali")
	s.Require().NoError(err)

	codes, err := s.storage.GetWantToGoList(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal([]model.DestinationCode{"bali"}, codes)
}

func (s *StorageSuite) TestAddWantToGoDuplicate() {
	s.saveAlice()
	s.Require().NoError(s.storage.AddWantToGo(s.ctx, "alice", "bali"))

	err := s.storage.AddWantToGo(s.ctx, "alice", "bali")
	s.ErrorIs(err, model.ErrAlreadyWanted)

	codes, _ := s.storage.GetWantToGoList(s.ctx, "alice")
	s.Len(codes, 1)
}

func (s *StorageSuite) TestAddWantToGoUnknownUser() {
	err := s.storage.AddWantToGo(s.ctx, "nobody", "bali")
	s.ErrorIs(err, model.ErrUserNotFound)
}

func (s *StorageSuite) TestGetWantToGoListUnknownUser() {
	_, err := s.storage.GetWantToGoList(s.ctx, "nobody")
	s.ErrorIs(err, model.ErrUserNotFound)
}

func (s *StorageSuite) TestConcurrentAddsLoseNothing() {
	s.saveAlice()

	codes := []model.DestinationCode{"rome", "bali", "paris", "santorini", "annapurna", "inca"}
	var wg sync.WaitGroup
	for _, code := range codes {
		wg.Add(1)
		go func(c model.DestinationCode) {
			defer wg.Done()
			_ = s.storage.AddWantToGo(s.ctx, "alice", c)
		}(code)
	}
	wg.Wait()

	stored, err := s.storage.GetWantToGoList(s.ctx, "alice")
	s.Require().NoError(err)
	s.ElementsMatch(codes, stored)
}
