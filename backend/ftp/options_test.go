package ftp

import (
	"bytes"
	"context"
	"crypto/tls"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/c2fo/ftpx/utils/authority"
)

type optionsSuite struct {
	suite.Suite
}

func TestOptions(t *testing.T) {
	suite.Run(t, new(optionsSuite))
}

// SetupTest clears every env var the options read; t.Setenv restores the original values afterwards.
func (s *optionsSuite) SetupTest() {
	for _, env := range []string{envUsername, envPassword, envProtocol, envDisableEPSV} {
		s.T().Setenv(env, "")
		s.NoError(os.Unsetenv(env))
	}
}

func (s *optionsSuite) authority(str string) authority.Authority {
	a, err := authority.NewAuthority(str)
	s.Require().NoError(err)
	return a
}

func (s *optionsSuite) TestUsernamePrecedence() {
	s.Equal(defaultUsername, fetchUsername(s.authority("host.com"), Options{}), "anonymous without any source")

	s.T().Setenv(envUsername, "fromenv")
	s.Equal("fromenv", fetchUsername(s.authority("host.com"), Options{}))
	s.Equal("bob", fetchUsername(s.authority("bob@host.com"), Options{}), "authority beats the env var")
	s.Equal("alice", fetchUsername(s.authority("bob@host.com"), Options{UserName: "alice"}), "option beats everything")

	s.T().Setenv(envUsername, "")
	s.Equal(defaultUsername, fetchUsername(s.authority("host.com"), Options{}), "an empty env var is ignored")
}

func (s *optionsSuite) TestPasswordPrecedence() {
	s.Equal(defaultPassword, fetchPassword(Options{}))

	s.T().Setenv(envPassword, "")
	s.Empty(fetchPassword(Options{}), "a set but empty env var means no password")

	s.T().Setenv(envPassword, "fromenv")
	s.Equal("fromenv", fetchPassword(Options{}))
	s.Equal("option", fetchPassword(Options{Password: "option"}))
}

func (s *optionsSuite) TestFetchHostPortString() {
	tests := map[string]string{
		"host.com":            "host.com:21",
		"bob@host.com:2121":   "host.com:2121",
		"ftp://host.com/path": "host.com:21",
		"[::1]":               "[::1]:21",
		"[::1]:990":           "[::1]:990",
	}
	for in, expected := range tests {
		s.Equal(expected, fetchHostPortString(s.authority(in)), in)
	}
}

func (s *optionsSuite) TestFetchProtocol() {
	s.Equal(ProtocolFTP, fetchProtocol(Options{}))

	s.T().Setenv(envProtocol, "ftps")
	s.Equal(ProtocolFTPS, fetchProtocol(Options{}), "env var is case insensitive")
	s.Equal(ProtocolFTPES, fetchProtocol(Options{Protocol: "FtpES"}), "option is case insensitive and wins")
}

func (s *optionsSuite) TestIsDisableOption() {
	yes, no := true, false

	s.False(isDisableOption(Options{}))

	s.T().Setenv(envDisableEPSV, "true")
	s.True(isDisableOption(Options{}))
	s.False(isDisableOption(Options{DisableEPSV: &no}), "option beats the env var")

	s.T().Setenv(envDisableEPSV, "not-a-bool")
	s.False(isDisableOption(Options{}))
	s.True(isDisableOption(Options{DisableEPSV: &yes}))
}

func (s *optionsSuite) TestFetchTLSConfig() {
	cfg := fetchTLSConfig(s.authority("secure.host.com:990"), Options{})
	s.Equal("secure.host.com", cfg.ServerName)
	s.Equal(uint16(tls.VersionTLS12), cfg.MinVersion)
	s.NotNil(cfg.ClientSessionCache, "session reuse is needed for the data connection")

	custom := &tls.Config{ServerName: "custom", MinVersion: tls.VersionTLS13}
	s.Same(custom, fetchTLSConfig(s.authority("host.com"), Options{TLSConfig: custom}))
}

func (s *optionsSuite) TestFetchDialOptions() {
	a := s.authority("host.com")
	ctx := context.Background()

	tests := []struct {
		description string
		opts        Options
		expected    int
	}{
		{description: "plain ftp: context and epsv", opts: Options{}, expected: 2},
		{description: "implicit tls", opts: Options{Protocol: ProtocolFTPS}, expected: 3},
		{description: "explicit tls", opts: Options{Protocol: "ftpes"}, expected: 3},
		{description: "debug output", opts: Options{DebugWriter: &bytes.Buffer{}}, expected: 3},
		{description: "dial timeout", opts: Options{DialTimeout: time.Second}, expected: 3},
		{
			description: "everything",
			opts:        Options{Protocol: ProtocolFTPES, DebugWriter: &bytes.Buffer{}, DialTimeout: time.Minute},
			expected:    5,
		},
	}

	for _, tt := range tests {
		s.Run(tt.description, func() {
			s.Len(fetchDialOptions(ctx, a, tt.opts), tt.expected)
		})
	}
}
