package sftp

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/json"
	"encoding/pem"
	"errors"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/knownhosts"
	"gopkg.in/yaml.v2"

	"github.com/c2fo/ftpx/utils/authority"
)

type optionsSuite struct {
	suite.Suite
	home string
}

func TestOptions(t *testing.T) {
	suite.Run(t, new(optionsSuite))
}

func (o *optionsSuite) SetupSuite() {
	homedir.DisableCache = true
}

func (o *optionsSuite) TearDownSuite() {
	homedir.DisableCache = false
}

func (o *optionsSuite) SetupTest() {
	for _, env := range []string{envPassword, envKeyFile, envKeyFilePassphrase, envKnownHostsFile, envInsecureKnownHosts} {
		o.T().Setenv(env, "")
		o.NoError(os.Unsetenv(env))
	}
	o.home = o.T().TempDir()
	o.T().Setenv("HOME", o.home)
	o.Require().NoError(os.Mkdir(filepath.Join(o.home, ".ssh"), 0o700))
}

// writeKey writes a fresh ed25519 private key to ~/.ssh/name and returns its public half.
func (o *optionsSuite) writeKey(name, passphrase string) ssh.PublicKey {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	o.Require().NoError(err)

	var block *pem.Block
	if passphrase != "" {
		block, err = ssh.MarshalPrivateKeyWithPassphrase(priv, "", []byte(passphrase))
	} else {
		block, err = ssh.MarshalPrivateKey(priv, "")
	}
	o.Require().NoError(err)
	o.Require().NoError(os.WriteFile(filepath.Join(o.home, ".ssh", name), pem.EncodeToMemory(block), 0o600))

	sshPub, err := ssh.NewPublicKey(pub)
	o.Require().NoError(err)
	return sshPub
}

func (o *optionsSuite) newPublicKey() ssh.PublicKey {
	pub, _, err := ed25519.GenerateKey(rand.Reader)
	o.Require().NoError(err)
	key, err := ssh.NewPublicKey(pub)
	o.Require().NoError(err)
	return key
}

func (o *optionsSuite) TestGetKeyFile() {
	pub := o.writeKey("id_ed25519", "")
	o.writeKey("id_locked", "s3cr3t")

	signer, err := getKeyFile("~/.ssh/id_ed25519", "")
	o.Require().NoError(err, "home relative path should expand")
	o.Equal(pub.Marshal(), signer.PublicKey().Marshal())

	_, err = getKeyFile("~/.ssh/id_locked", "s3cr3t")
	o.NoError(err)

	_, err = getKeyFile("~/.ssh/id_locked", "")
	var missing *ssh.PassphraseMissingError
	o.ErrorAs(err, &missing)

	_, err = getKeyFile("~/.ssh/id_locked", "wrong")
	o.Error(err)

	_, err = getKeyFile("~/.ssh/nope", "")
	o.ErrorIs(err, os.ErrNotExist)
}

func (o *optionsSuite) TestGetAuthMethods() {
	o.writeKey("env_key", "")
	o.writeKey("opt_key", "pass")

	auth, err := getAuthMethods(Options{})
	o.Require().NoError(err)
	o.Empty(auth)

	o.T().Setenv(envPassword, "envpw")
	auth, err = getAuthMethods(Options{})
	o.Require().NoError(err)
	o.Len(auth, 1)

	o.T().Setenv(envKeyFile, filepath.Join(o.home, ".ssh", "env_key"))
	auth, err = getAuthMethods(Options{Password: "optpw"})
	o.Require().NoError(err)
	o.Len(auth, 2, "password plus key from env")

	// option key path and passphrase beat the env vars; the env key has no passphrase
	o.T().Setenv(envKeyFilePassphrase, "not-used")
	auth, err = getAuthMethods(Options{KeyFilePath: "~/.ssh/opt_key", KeyPassphrase: "pass"})
	o.Require().NoError(err)
	o.Len(auth, 2)

	_, err = getAuthMethods(Options{KeyFilePath: "~/.ssh/missing"})
	o.ErrorIs(err, os.ErrNotExist)
}

func (o *optionsSuite) TestGetHostKeyCallback() {
	hostKey := o.newPublicKey()
	other := o.newPublicKey()
	remote := &net.TCPAddr{IP: net.ParseIP("127.0.0.1"), Port: 22}

	o.Run("explicit callback", func() {
		errCalled := errors.New("called")
		cb, err := getHostKeyCallback(Options{
			KnownHostsCallback: func(string, net.Addr, ssh.PublicKey) error { return errCalled },
			KnownHostsString:   "ignored",
		})
		o.Require().NoError(err)
		o.ErrorIs(cb("host.com:22", remote, hostKey), errCalled)
	})

	o.Run("known hosts string", func() {
		cb, err := getHostKeyCallback(Options{KnownHostsString: string(ssh.MarshalAuthorizedKey(hostKey))})
		o.Require().NoError(err)
		o.NoError(cb("host.com:22", remote, hostKey))
		o.Error(cb("host.com:22", remote, other))

		_, err = getHostKeyCallback(Options{KnownHostsString: "not a key"})
		o.Error(err)
	})

	line := knownhosts.Line([]string{"host.com:22", "127.0.0.1:22"}, hostKey) + "\n"
	o.Require().NoError(os.WriteFile(filepath.Join(o.home, ".ssh", "known_hosts"), []byte(line), 0o600))

	o.Run("home relative known hosts file", func() {
		cb, err := getHostKeyCallback(Options{KnownHostsFile: "~/.ssh/known_hosts"})
		o.Require().NoError(err)
		o.NoError(cb("host.com:22", remote, hostKey))
		o.Error(cb("host.com:22", remote, other))
	})

	o.Run("missing file falls back to the env file", func() {
		o.T().Setenv(envKnownHostsFile, filepath.Join(o.home, ".ssh", "known_hosts"))
		cb, err := getHostKeyCallback(Options{KnownHostsFile: "~/.ssh/nope"})
		o.Require().NoError(err)
		o.NoError(cb("host.com:22", remote, hostKey))
	})

	o.Run("missing files fall back to insecure", func() {
		o.T().Setenv(envKnownHostsFile, filepath.Join(o.home, "nope"))
		o.T().Setenv(envInsecureKnownHosts, "true")
		cb, err := getHostKeyCallback(Options{KnownHostsFile: "~/.ssh/nope"})
		o.Require().NoError(err)
		o.NoError(cb("unknown.com:22", remote, other))
	})
}

func (o *optionsSuite) TestGetSSHConfig() {
	cfg := getSShConfig(Options{})
	o.Equal(defaultSSHConfig.HostKeyAlgorithms, cfg.HostKeyAlgorithms)
	o.Equal(defaultSSHConfig.Ciphers, cfg.Ciphers)
	o.Equal(defaultSSHConfig.MACs, cfg.MACs)
	o.Equal(defaultSSHConfig.KeyExchanges, cfg.KeyExchanges)

	// each list falls back on its own
	cfg = getSShConfig(Options{Ciphers: []string{"aes256-ctr"}, KeyExchanges: []string{"curve25519-sha256"}})
	o.Equal([]string{"aes256-ctr"}, cfg.Ciphers)
	o.Equal([]string{"curve25519-sha256"}, cfg.KeyExchanges)
	o.Equal(defaultSSHConfig.HostKeyAlgorithms, cfg.HostKeyAlgorithms)
	o.Equal(defaultSSHConfig.MACs, cfg.MACs)

	cfg = getSShConfig(Options{HostKeyAlgorithms: []string{ssh.KeyAlgoED25519}, MACs: []string{"hmac-sha2-256"}})
	o.Equal([]string{ssh.KeyAlgoED25519}, cfg.HostKeyAlgorithms)
	o.Equal([]string{"hmac-sha2-256"}, cfg.MACs)
	o.Equal(defaultSSHConfig.Ciphers, cfg.Ciphers)
}

func (o *optionsSuite) TestMarshalOptions() {
	opts := Options{
		KeyFilePath:        "~/.ssh/id_ed25519",
		KnownHostsCallback: ssh.InsecureIgnoreHostKey(), //nolint:gosec
		Ciphers:            []string{"aes256-ctr"},
		DialTimeout:        5 * time.Second,
	}

	js, err := json.Marshal(opts)
	o.Require().NoError(err, "the callback must not break json")
	o.JSONEq(`{"keyFilePath":"~/.ssh/id_ed25519","ciphers":["aes256-ctr"],"dialTimeout":5000000000}`, string(js))

	y, err := yaml.Marshal(opts)
	o.Require().NoError(err)
	var back Options
	o.Require().NoError(yaml.Unmarshal(y, &back))
	o.Equal("~/.ssh/id_ed25519", back.KeyFilePath)
	o.Equal([]string{"aes256-ctr"}, back.Ciphers)
	o.Equal(5*time.Second, back.DialTimeout)
	o.Nil(back.KnownHostsCallback)
}

func (o *optionsSuite) TestGetClientBadKey() {
	a, err := authority.NewAuthority("user@127.0.0.1:1")
	o.Require().NoError(err)

	_, _, err = getClient(a, Options{KeyFilePath: "~/.ssh/missing", KnownHostsCallback: ssh.InsecureIgnoreHostKey()}) //nolint:gosec
	o.ErrorIs(err, os.ErrNotExist, "key errors are reported before dialing")
}
