package sftp

import (
	"errors"
	"io"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/mitchellh/go-homedir"
	_sftp "github.com/pkg/sftp"
	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/knownhosts"

	"github.com/c2fo/ftpx/utils"
	"github.com/c2fo/ftpx/utils/authority"
)

const (
	systemWideKnownHosts = "/etc/ssh/ssh_known_hosts"
	defaultPort          = 22

	envPassword           = "FTPX_SFTP_PASSWORD"
	envKeyFile            = "FTPX_SFTP_KEYFILE"
	envKeyFilePassphrase  = "FTPX_SFTP_KEYFILE_PASSPHRASE"
	envKnownHostsFile     = "FTPX_SFTP_KNOWN_HOSTS_FILE"
	envInsecureKnownHosts = "FTPX_SFTP_INSECURE_KNOWN_HOSTS"
)

// Options holds sftp-specific connection settings.
type Options struct {
	Password           string              `json:"password,omitempty" yaml:"password,omitempty"`                     // env var FTPX_SFTP_PASSWORD
	KeyFilePath        string              `json:"keyFilePath,omitempty" yaml:"key_file_path,omitempty"`             // env var FTPX_SFTP_KEYFILE
	KeyPassphrase      string              `json:"keyPassphrase,omitempty" yaml:"key_passphrase,omitempty"`          // env var FTPX_SFTP_KEYFILE_PASSPHRASE
	KnownHostsFile     string              `json:"knownHostsFile,omitempty" yaml:"known_hosts_file,omitempty"`       // env var FTPX_SFTP_KNOWN_HOSTS_FILE
	KnownHostsString   string              `json:"knownHostsString,omitempty" yaml:"known_hosts_string,omitempty"`
	KnownHostsCallback ssh.HostKeyCallback `json:"-" yaml:"-"`                                                       // env var FTPX_SFTP_INSECURE_KNOWN_HOSTS
	HostKeyAlgorithms  []string            `json:"hostKeyAlgorithms,omitempty" yaml:"host_key_algorithms,omitempty"`
	Ciphers            []string            `json:"ciphers,omitempty" yaml:"ciphers,omitempty"`
	MACs               []string            `json:"macs,omitempty" yaml:"macs,omitempty"`
	KeyExchanges       []string            `json:"keyExchanges,omitempty" yaml:"key_exchanges,omitempty"`
	DialTimeout        time.Duration       `json:"dialTimeout,omitempty" yaml:"dial_timeout,omitempty"`              // timeout for connecting only
}

var defaultSSHConfig = &ssh.ClientConfig{
	HostKeyAlgorithms: []string{
		ssh.KeyAlgoED25519,
		ssh.KeyAlgoECDSA256,
		ssh.KeyAlgoECDSA384,
		ssh.KeyAlgoECDSA521,
		ssh.KeyAlgoRSASHA512,
		ssh.KeyAlgoRSASHA256,
		ssh.KeyAlgoRSA,
	},
	Config: ssh.Config{
		Ciphers: []string{
			"aes128-gcm@openssh.com",
			"aes256-gcm@openssh.com",
			"chacha20-poly1305@openssh.com",
			"aes128-ctr",
			"aes192-ctr",
			"aes256-ctr",
		},
		MACs: []string{
			"hmac-sha2-256-etm@openssh.com",
			"hmac-sha2-512-etm@openssh.com",
			"hmac-sha2-256",
			"hmac-sha2-512",
		},
		KeyExchanges: []string{
			"curve25519-sha256",
			"curve25519-sha256@libssh.org",
			"ecdh-sha2-nistp256",
			"ecdh-sha2-nistp384",
			"ecdh-sha2-nistp521",
			"diffie-hellman-group14-sha256",
		},
	},
}

// Note that as of 1.12, OPENSSH private key format is not supported when encrypt (with passphrase).
// See https://github.com/golang/go/issues/18692
// To force creation of PEM format(instead of OPENSSH format), use ssh-keygen -m PEM

// getClient dials the server and starts an sftp session.  The returned closer is the ssh connection, which
// must be closed after the sftp client.
func getClient(a authority.Authority, opts Options) (*_sftp.Client, io.Closer, error) {
	// setup Authentication
	authMethods, err := getAuthMethods(opts)
	if err != nil {
		return nil, nil, err
	}

	// get callback for handling known_hosts man-in-the-middle checks
	hostKeyCallback, err := getHostKeyCallback(opts)
	if err != nil {
		return nil, nil, err
	}

	config := getSShConfig(opts)
	config.User = a.UserInfo().Username()
	config.Auth = authMethods
	config.HostKeyCallback = hostKeyCallback
	config.Timeout = opts.DialTimeout

	sshClient, err := ssh.Dial("tcp", a.DialAddress(defaultPort), config)
	if err != nil {
		return nil, nil, err
	}

	client, err := _sftp.NewClient(sshClient)
	if err != nil {
		_ = sshClient.Close()
		return nil, nil, err
	}

	return client, sshClient, nil
}

// getSShConfig returns the algorithm settings from opts, falling back to defaultSSHConfig per list.
func getSShConfig(opts Options) *ssh.ClientConfig {
	cfg := &ssh.ClientConfig{
		HostKeyAlgorithms: defaultSSHConfig.HostKeyAlgorithms,
		Config: ssh.Config{
			Ciphers:      defaultSSHConfig.Config.Ciphers,
			MACs:         defaultSSHConfig.Config.MACs,
			KeyExchanges: defaultSSHConfig.Config.KeyExchanges,
		},
	}
	if opts.HostKeyAlgorithms != nil {
		cfg.HostKeyAlgorithms = opts.HostKeyAlgorithms
	}
	if opts.Ciphers != nil {
		cfg.Config.Ciphers = opts.Ciphers
	}
	if opts.MACs != nil {
		cfg.Config.MACs = opts.MACs
	}
	if opts.KeyExchanges != nil {
		cfg.Config.KeyExchanges = opts.KeyExchanges
	}
	return cfg
}

// getHostKeyCallback gets host key callback for all known_hosts files
func getHostKeyCallback(opts Options) (ssh.HostKeyCallback, error) {
	var knownHostsFiles []string
	switch {
	// use explicit callback in Options
	case opts.KnownHostsCallback != nil:
		return opts.KnownHostsCallback, nil

	case opts.KnownHostsString != "":
		hostKey, _, _, _, err := ssh.ParseAuthorizedKey([]byte(opts.KnownHostsString))
		if err != nil {
			return nil, err
		}
		return ssh.FixedHostKey(hostKey), nil

	// use explicit known_hosts file path, ie, ~/.ssh/known_hosts
	case opts.KnownHostsFile != "":
		file, err := homedir.Expand(opts.KnownHostsFile)
		if err != nil {
			return nil, err
		}
		// check first to prevent auto-vivification of file
		found, err := foundFile(file)
		if err != nil {
			return nil, err
		}
		if found {
			knownHostsFiles = append(knownHostsFiles, file)
			break
		}
		// use env var if explicit file wasn't found
		fallthrough

	// use env var known_hosts file path, ie, /home/bob/.ssh/known_hosts
	case os.Getenv(envKnownHostsFile) != "":
		found, err := foundFile(os.Getenv(envKnownHostsFile))
		if err != nil {
			return nil, err
		}
		if found {
			knownHostsFiles = append(knownHostsFiles, os.Getenv(envKnownHostsFile))
			break
		}
		// use default if env var file wasn't found
		fallthrough

	case os.Getenv(envInsecureKnownHosts) != "":
		return ssh.InsecureIgnoreHostKey(), nil //nolint:gosec

	// use user/system-wide known_hosts paths (as defined by OpenSSH https://man.openbsd.org/ssh)
	default:
		var err error
		knownHostsFiles, err = findHomeSystemKnownHosts(knownHostsFiles)
		if err != nil {
			return nil, err
		}
	}

	// get host key callback for all known_hosts files
	return knownhosts.New(knownHostsFiles...)
}

func findHomeSystemKnownHosts(knownHostsFiles []string) ([]string, error) {
	// add ~/.ssh/known_hosts
	home, err := homedir.Dir()
	if err != nil {
		return nil, err
	}
	homeKnownHostsPath := utils.EnsureLeadingSlash(path.Join(home, ".ssh/known_hosts"))

	// check file existence first to prevent auto-vivification of file
	found, err := foundFile(homeKnownHostsPath)
	if err != nil {
		return nil, err
	}
	if found {
		knownHostsFiles = append(knownHostsFiles, homeKnownHostsPath)
	}

	// add /etc/ssh/ssh_known_hosts for unix-like systems.  SSH doesn't exist natively on Windows and each
	// implementation has a different location for known_hosts. Better to specify in KnownHostsFile for Windows
	if runtime.GOOS != "windows" {
		found, err := foundFile(systemWideKnownHosts)
		if err != nil {
			return nil, err
		}
		if found {
			knownHostsFiles = append(knownHostsFiles, systemWideKnownHosts)
		}
	}
	return knownHostsFiles, nil
}

func foundFile(file string) (bool, error) {
	if _, err := os.Stat(file); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func getAuthMethods(opts Options) ([]ssh.AuthMethod, error) {
	auth := make([]ssh.AuthMethod, 0)

	// explicitly set password from opts, then from env if any
	pw := os.Getenv(envPassword)
	if opts.Password != "" {
		pw = opts.Password
	}
	if pw != "" {
		auth = append(auth, ssh.Password(pw))
	}

	// setup key-based auth from env, if any
	keyfile := os.Getenv(envKeyFile)
	if opts.KeyFilePath != "" {
		keyfile = opts.KeyFilePath
	}
	if keyfile != "" {
		// gather passphrase, if any
		passphrase := os.Getenv(envKeyFilePassphrase)
		if opts.KeyPassphrase != "" {
			passphrase = opts.KeyPassphrase
		}

		secretKey, err := getKeyFile(keyfile, passphrase)
		if err != nil {
			return []ssh.AuthMethod{}, err
		}
		auth = append(auth, ssh.PublicKeys(secretKey))
	}

	return auth, nil
}

func getKeyFile(file, passphrase string) (ssh.Signer, error) {
	file, err := homedir.Expand(file)
	if err != nil {
		return nil, err
	}

	buf, err := os.ReadFile(file) //nolint:gosec
	if err != nil {
		return nil, err
	}

	if passphrase != "" {
		return ssh.ParsePrivateKeyWithPassphrase(buf, []byte(passphrase))
	}
	return ssh.ParsePrivateKey(buf)
}
