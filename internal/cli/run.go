package cli

import (
	"context"

	"github.com/spf13/cobra"

	"pw2pr.dev/pw2pr/internal/action"
	"pw2pr.dev/pw2pr/internal/git"
	gh "pw2pr.dev/pw2pr/internal/github"
	"pw2pr.dev/pw2pr/internal/installer"
	"pw2pr.dev/pw2pr/internal/invoker"
	"pw2pr.dev/pw2pr/internal/output"
	"pw2pr.dev/pw2pr/internal/pipeline"
	"pw2pr.dev/pw2pr/internal/redact"
)

// runFlags are command-line overrides for the action inputs. In the action
// container everything arrives via INPUT_* variables; the flags exist for
// local runs and debugging.
type runFlags struct {
	keyStr        string
	baseBranch    string
	config        string
	patchworkID   string
	emailMessage  string
	user          string
	program       string
	clientPackage string
	pip           string
	skipPreflight bool
	verbose       bool
}

func newRunCmd() *cobra.Command {
	flags := &runFlags{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Validate the environment, configure git, and invoke the converter",
		RunE: func(cmd *cobra.Command, args []string) error {
			splog := output.NewSplog()
			splog.SetVerbose(flags.verbose)
			return runAction(cmd.Context(), flags, splog)
		},
	}

	cmd.Flags().StringVar(&flags.keyStr, "pw-key-str", "", "repo type key string (kernel or user)")
	cmd.Flags().StringVar(&flags.baseBranch, "base-branch", "", "branch the pull request targets")
	cmd.Flags().StringVar(&flags.config, "config", "", "configuration file path or URL")
	cmd.Flags().StringVar(&flags.patchworkID, "patchwork-id", "", "patchwork project id")
	cmd.Flags().StringVar(&flags.emailMessage, "email-message", "", "email message file path or URL")
	cmd.Flags().StringVar(&flags.user, "user", "", "patchwork user id")
	cmd.Flags().StringVar(&flags.program, "program", "", "external conversion program to invoke")
	cmd.Flags().StringVar(&flags.clientPackage, "client-package", installer.DefaultPackage, "pip package providing the patchwork client")
	cmd.Flags().StringVar(&flags.pip, "pip", installer.DefaultPip, "pip executable used to install the client")
	cmd.Flags().BoolVar(&flags.skipPreflight, "skip-preflight", false, "skip the GitHub token preflight check")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable debug output")

	return cmd
}

// resolveInputs layers flag overrides on top of the env-resolved inputs.
func resolveInputs(m *action.Manifest, flags *runFlags) (*action.Inputs, error) {
	in := action.InputsFromEnv(m)
	if flags.keyStr != "" {
		in.KeyStr = flags.keyStr
	}
	if flags.baseBranch != "" {
		in.BaseBranch = flags.baseBranch
	}
	if flags.config != "" {
		in.Config = flags.config
	}
	if flags.patchworkID != "" {
		in.PatchworkID = flags.patchworkID
	}
	if flags.emailMessage != "" {
		in.EmailMessage = flags.emailMessage
	}
	if flags.user != "" {
		in.User = flags.user
	}
	if flags.skipPreflight {
		in.SkipPreflight = true
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}
	return in, nil
}

// runAction assembles and executes the pipeline:
// Validate → Preflight → ConfigureIdentity → InjectCredential → WriteConfig →
// InstallDependency → Invoke. Any failure is terminal.
func runAction(ctx context.Context, flags *runFlags, splog *output.Splog) error {
	manifest, err := action.LoadManifest()
	if err != nil {
		return err
	}

	inputs, err := resolveInputs(manifest, flags)
	if err != nil {
		return err
	}

	runCtx, err := action.ContextFromEnv()
	if err != nil {
		return err
	}

	runner := git.NewCommandRunner(runCtx.Workspace)

	// Secrets resolve inside the first step; later steps read from here.
	var secrets *action.Secrets

	p := pipeline.New(splog)

	p.Add("Validate environment", func(ctx context.Context) error {
		s, err := action.SecretsFromEnv()
		if err != nil {
			return err
		}
		secrets = s
		splog.Protect(secrets.Values()...)
		return nil
	})

	p.Add("Check config source", func(ctx context.Context) error {
		return action.CheckConfigSource(inputs.Config)
	})

	if !inputs.SkipPreflight {
		p.Add("Preflight token check", func(ctx context.Context) error {
			client, err := gh.NewClient(ctx, runCtx.ServerURL, secrets.GitHubToken)
			if err != nil {
				return err
			}
			return client.CheckRepoAccess(ctx, runCtx.Repository)
		})
	}

	p.Add("Configure git identity", func(ctx context.Context) error {
		if _, err := git.OpenWorkspace(runCtx.Workspace); err != nil {
			return err
		}
		if err := runner.AddSafeDirectory(ctx, runCtx.Workspace); err != nil {
			return err
		}
		splog.Info("Setting git author to %s <%s>", runCtx.Actor, runCtx.NoreplyEmail())
		return runner.SetUserIdentity(ctx, runCtx.Actor, runCtx.NoreplyEmail())
	})

	p.Add("Inject push credential", func(ctx context.Context) error {
		url := git.CredentialURL(runCtx.Host(), runCtx.Repository, secrets.GitHubToken)
		splog.Info("Setting origin to %s", redact.MaskURL(url))
		return runner.SetOriginURL(ctx, url)
	})

	p.Add("Write patchwork config", func(ctx context.Context) error {
		server := action.PatchworkServer()
		return runner.WritePatchworkConfig(ctx, git.PatchworkConfig{
			Server:  server,
			Project: action.PatchworkProjectURL(server, inputs.PatchworkID),
			Token:   secrets.PatchworkToken,
		})
	})

	p.Add("Install patchwork client", func(ctx context.Context) error {
		splog.Info("Installing %s", flags.clientPackage)
		return installer.New(flags.pip).EnsureInstalled(ctx, flags.clientPackage)
	})

	p.Add("Invoke converter", func(ctx context.Context) error {
		inv := &invoker.Invocation{
			Program:     flags.program,
			Positionals: inputs.Positionals(),
			Workspace:   runCtx.Workspace,
			Repository:  runCtx.Repository,
		}
		echoInvocation(splog, inputs, runCtx)
		return invoker.Run(ctx, inv)
	})

	return p.Execute(ctx)
}

// echoInvocation prints the resolved non-secret parameters so operators can
// see what was about to run. Secret values never appear here; the splog
// redactor masks them as a second line of defense.
func echoInvocation(splog *output.Splog, inputs *action.Inputs, runCtx *action.Context) {
	splog.Info("pw_key_str:    %s", inputs.KeyStr)
	splog.Info("base_branch:   %s", inputs.BaseBranch)
	splog.Info("config:        %s", inputs.Config)
	splog.Info("patchwork_id:  %s", inputs.PatchworkID)
	splog.Info("email_message: %s", inputs.EmailMessage)
	splog.Info("user:          %s", inputs.User)
	splog.Info("repository:    %s", runCtx.Repository)
	splog.Info("workspace:     %s", runCtx.Workspace)
}
