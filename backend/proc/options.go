package proc

import "io"

// config holds the configuration for starting a process.
type config struct {
	dir           string
	env           map[string]string
	inheritEnv    bool
	disableColors bool
	stderr        io.Writer
}

// newConfig creates a configuration with default values and applies opts.
func newConfig(opts ...Option) *config {
	c := &config{env: make(map[string]string)}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// environ returns the child's environment in os/exec form.
func (c *config) environ(parent []string) []string {
	var env []string
	if c.inheritEnv {
		env = append(env, parent...)
	}
	for k, v := range c.env {
		env = append(env, k+"="+v)
	}
	if c.disableColors {
		env = append(env, "NO_COLOR=1", "TERM=dumb", "CLICOLOR=0", "CLICOLOR_FORCE=0", "FORCE_COLOR=0")
	}
	return env
}

// Option configures a process.
type Option func(*config)

// WithDir sets the working directory.
func WithDir(dir string) Option {
	return func(c *config) {
		c.dir = dir
	}
}

// WithEnv adds environment variables.
func WithEnv(env map[string]string) Option {
	return func(c *config) {
		for k, v := range env {
			c.env[k] = v
		}
	}
}

// WithInheritEnv passes the parent's environment to the child.
func WithInheritEnv() Option {
	return func(c *config) {
		c.inheritEnv = true
	}
}

// WithDisableColors sets the common variables that turn off colored output.
func WithDisableColors() Option {
	return func(c *config) {
		c.disableColors = true
	}
}

// WithStderr sends the child's stderr to w instead of capturing it.
func WithStderr(w io.Writer) Option {
	return func(c *config) {
		c.stderr = w
	}
}
