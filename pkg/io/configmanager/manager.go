package configmanager

import (
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/devantler-tech/backtool/pkg/apis/project/v1alpha1"
	"github.com/devantler-tech/backtool/pkg/fsutil"
	"github.com/devantler-tech/backtool/pkg/utils/envvar"
	"github.com/devantler-tech/backtool/pkg/utils/notify"
	mapstructure "github.com/go-viper/mapstructure/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix prefixes every environment variable read by backtool.
	EnvPrefix = "BACKTOOL"
	// ConfigFileName is the base name of the config file searched in the working and home directories.
	ConfigFileName = ".backtool"
	// ConfigFlag names the flag that points at an explicit config file.
	ConfigFlag = "config"
)

// LoadOptions configures how configuration is loaded.
type LoadOptions struct {
	// Silent suppresses the config file notification.
	Silent bool
	// IgnoreConfigFile skips reading on-disk config files (flags, env and defaults only).
	IgnoreConfigFile bool
}

// ConfigManager resolves v1alpha1.Input for one command.
type ConfigManager struct {
	Viper  *viper.Viper
	Writer io.Writer

	command *cobra.Command
	flags   flagValues
}

// NewConfigManager creates a manager with a private viper instance.
func NewConfigManager(writer io.Writer) *ConfigManager {
	return &ConfigManager{
		Viper:  InitializeViper(),
		Writer: writer,
	}
}

// NewCommandConfigManager creates a manager bound to cmd and registers the generation flags on it.
func NewCommandConfigManager(cmd *cobra.Command) *ConfigManager {
	manager := NewConfigManager(cmd.OutOrStdout())
	manager.command = cmd
	manager.AddFlags(cmd)

	return manager
}

// InitializeViper creates a viper instance reading BACKTOOL_* variables and .backtool.yaml
// from the working directory or $HOME.
func InitializeViper() *viper.Viper {
	v := viper.New()
	v.SetConfigName(ConfigFileName)
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads the config file (unless ignored) and decodes flags, env and file into an Input.
// ${VAR} references in the connection URI and directory settings are expanded, and a
// leading ~/ in the output directory resolves to the home directory.
func (m *ConfigManager) Load(opts LoadOptions) (v1alpha1.Input, error) {
	if m.command != nil {
		m.Writer = m.command.OutOrStdout()
	}

	if !opts.IgnoreConfigFile {
		err := m.readConfig(opts.Silent)
		if err != nil {
			return v1alpha1.Input{}, err
		}
	}

	var input v1alpha1.Input

	err := m.Viper.Unmarshal(&input, func(dc *mapstructure.DecoderConfig) {
		dc.DecodeHook = enumDecodeHook()
	})
	if err != nil {
		return v1alpha1.Input{}, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	input.ConnectionURI = envvar.Expand(input.ConnectionURI)
	input.OutputDir = envvar.Expand(input.OutputDir)
	input.TemplatesDir = envvar.Expand(input.TemplatesDir)

	if strings.HasPrefix(input.OutputDir, "~/") {
		input.OutputDir, err = fsutil.ExpandHomePath(input.OutputDir)
		if err != nil {
			return v1alpha1.Input{}, fmt.Errorf("expand output directory: %w", err)
		}
	}

	return input, nil
}

// ConfigFileUsed returns the path of the config file that was read, if any.
func (m *ConfigManager) ConfigFileUsed() string {
	return m.Viper.ConfigFileUsed()
}

func (m *ConfigManager) readConfig(silent bool) error {
	if m.command != nil {
		flag := m.command.Flags().Lookup(ConfigFlag)
		if flag != nil && flag.Value.String() != "" {
			m.Viper.SetConfigFile(flag.Value.String())
		}
	}

	err := m.Viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}

		return fmt.Errorf("failed to read config file: %w", err)
	}

	if !silent {
		notify.Infof(m.Writer, "using config file %s", m.Viper.ConfigFileUsed())
	}

	return nil
}

// enumDecodeHook decodes strings into pflag.Value types, such as v1alpha1.Database,
// so config files and env vars accept the same aliases as flags.
func enumDecodeHook() mapstructure.DecodeHookFuncType {
	return func(from reflect.Type, to reflect.Type, data any) (any, error) {
		if from.Kind() != reflect.String || to.Kind() != reflect.String {
			return data, nil
		}

		target := reflect.New(to)

		setter, ok := target.Interface().(pflag.Value)
		if !ok {
			return data, nil
		}

		raw, _ := data.(string)
		if raw == "" {
			return data, nil
		}

		err := setter.Set(raw)
		if err != nil {
			return nil, err //nolint:wrapcheck // enum errors already name the value and options
		}

		return target.Elem().Interface(), nil
	}
}
