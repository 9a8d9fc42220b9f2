package config_test

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"gopkg.in/yaml.v3"

	appconfig "crate/internal/config"
	crateerrors "crate/internal/errors"
	"crate/internal/mocks"
	"crate/internal/services/config"
	"crate/internal/testutil"
)

// WriterTestSuite provides common setup for writer tests.
type WriterTestSuite struct {
	suite.Suite

	ctx        context.Context
	logger     *slog.Logger
	mockFS     *mocks.MockFileSystemAdapter
	configPath string
}

func (s *WriterTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.logger = testutil.Logger()
	s.mockFS = mocks.NewMockFileSystemAdapter(s.T())
	s.configPath = "/home/tester/.config/crate/config.yaml"
}

func (s *WriterTestSuite) TestWrite_NewFile() {
	var written []byte
	s.mockFS.EXPECT().Stat(s.configPath).Return(nil, os.ErrNotExist)
	s.mockFS.EXPECT().MkdirAll("/home/tester/.config/crate", os.FileMode(0o700)).Return(nil)
	s.mockFS.EXPECT().WriteFile(s.configPath, mock.Anything, os.FileMode(0o600)).
		Run(func(_ string, data []byte, _ os.FileMode) { written = data }).
		Return(nil)

	err := config.NewWriter(s.mockFS, s.logger).Write(s.ctx, s.configPath, appconfig.Defaults(), false)

	s.Require().NoError(err)

	var file appconfig.File
	s.Require().NoError(yaml.Unmarshal(written, &file))
	s.Equal("http://localhost:8080/api/v1", file.Server.Default)
	s.Equal("tf-test", file.Login.DefaultUsername)
	s.Equal("30s", file.HTTP.Timeout)
}

func (s *WriterTestSuite) TestWrite_RefusesOverwrite() {
	s.mockFS.EXPECT().Stat(s.configPath).Return(nil, nil)

	err := config.NewWriter(s.mockFS, s.logger).Write(s.ctx, s.configPath, appconfig.Defaults(), false)

	s.Require().Error(err)
	s.True(crateerrors.IsConfiguration(err))
	s.ErrorIs(err, os.ErrExist)
	s.Contains(err.Error(), "--force")
	s.mockFS.AssertNotCalled(s.T(), "WriteFile", mock.Anything, mock.Anything, mock.Anything)
}

func (s *WriterTestSuite) TestWrite_ForceOverwrites() {
	s.mockFS.EXPECT().MkdirAll("/home/tester/.config/crate", os.FileMode(0o700)).Return(nil)
	s.mockFS.EXPECT().WriteFile(s.configPath, mock.Anything, os.FileMode(0o600)).Return(nil)

	err := config.NewWriter(s.mockFS, s.logger).Write(s.ctx, s.configPath, appconfig.Defaults(), true)

	s.Require().NoError(err)
	s.mockFS.AssertNotCalled(s.T(), "Stat", mock.Anything)
}

func (s *WriterTestSuite) TestWrite_StatFailure() {
	s.mockFS.EXPECT().Stat(s.configPath).Return(nil, os.ErrPermission)

	err := config.NewWriter(s.mockFS, s.logger).Write(s.ctx, s.configPath, appconfig.Defaults(), false)

	s.Require().Error(err)
	s.ErrorIs(err, os.ErrPermission)
}

func (s *WriterTestSuite) TestWrite_MkdirFailure() {
	s.mockFS.EXPECT().Stat(s.configPath).Return(nil, os.ErrNotExist)
	s.mockFS.EXPECT().MkdirAll("/home/tester/.config/crate", os.FileMode(0o700)).Return(errors.New("read-only file system"))

	err := config.NewWriter(s.mockFS, s.logger).Write(s.ctx, s.configPath, appconfig.Defaults(), false)

	s.Require().Error(err)
	s.Contains(err.Error(), "failed to create config directory")
}

func (s *WriterTestSuite) TestWrite_WriteFailure() {
	s.mockFS.EXPECT().Stat(s.configPath).Return(nil, os.ErrNotExist)
	s.mockFS.EXPECT().MkdirAll("/home/tester/.config/crate", os.FileMode(0o700)).Return(nil)
	s.mockFS.EXPECT().WriteFile(s.configPath, mock.Anything, os.FileMode(0o600)).Return(errors.New("disk full"))

	err := config.NewWriter(s.mockFS, s.logger).Write(s.ctx, s.configPath, appconfig.Defaults(), false)

	s.Require().Error(err)
	s.Contains(err.Error(), "failed to write config file")
}

func TestWriterTestSuite(t *testing.T) {
	suite.Run(t, new(WriterTestSuite))
}

// ProviderTestSuite covers configuration path resolution.
type ProviderTestSuite struct {
	suite.Suite

	mockFS *mocks.MockFileSystemAdapter
}

func (s *ProviderTestSuite) SetupTest() {
	s.mockFS = mocks.NewMockFileSystemAdapter(s.T())
}

func (s *ProviderTestSuite) TestGetConfigPath() {
	s.mockFS.EXPECT().UserHomeDir().Return("/home/tester", nil)

	path, err := config.NewProvider(s.mockFS).GetConfigPath()

	s.Require().NoError(err)
	s.Equal("/home/tester/.config/crate/config.yaml", path)
}

func (s *ProviderTestSuite) TestGetConfigDir() {
	s.mockFS.EXPECT().UserHomeDir().Return("/home/tester", nil)

	dir, err := config.NewProvider(s.mockFS).GetConfigDir()

	s.Require().NoError(err)
	s.Equal("/home/tester/.config/crate", dir)
}

func (s *ProviderTestSuite) TestHomeDirFailure() {
	s.mockFS.EXPECT().UserHomeDir().Return("", errors.New("$HOME is not defined"))

	_, err := config.NewProvider(s.mockFS).GetConfigPath()

	s.Require().Error(err)
	s.Contains(err.Error(), "failed to get home directory")
}

func TestProviderTestSuite(t *testing.T) {
	suite.Run(t, new(ProviderTestSuite))
}
