package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/philjestin/agentmux/internal/config"
	"github.com/philjestin/agentmux/internal/coordinator"
	"github.com/philjestin/agentmux/internal/events"
	"github.com/philjestin/agentmux/internal/invoker"
	"github.com/philjestin/agentmux/internal/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// activateCmd represents the activate command - the main coordination entry.
var activateCmd = &cobra.Command{
	Use:   "activate [agent-id]...",
	Short: "Activate one or more agents with coordination",
	Long: `Activate the listed agents under a coordination mode.

Each activation runs the configured invoker command once per agent, passing
the merged input (base input plus shared context, plus turn metadata in
conversation mode) as JSON on stdin. Results are collected per agent and the
run ends with a success/failure summary.

Examples:
  agentmux activate planner critic --mode sequential --input '{"topic":"caching"}'
  agentmux activate fetcher parser indexer --mode chain
  agentmux activate a b c --mode parallel --max-parallel 2`,
	Args: cobra.MinimumNArgs(1),
	RunE: runActivate,
}

func init() {
	rootCmd.AddCommand(activateCmd)

	activateCmd.Flags().String("mode", "", "Coordination mode: sequential, parallel, chain, conversation")
	activateCmd.Flags().String("input", "", "JSON input data shared by all agents")
	activateCmd.Flags().String("context", "", "JSON shared context (defaults to a generated session)")
	activateCmd.Flags().Int("max-parallel", 0, "Cap concurrent activations in parallel mode (0 = no limit)")
	activateCmd.Flags().String("invoker-command", "", "Program run once per agent activation")
	activateCmd.Flags().Bool("emit-events", false, "Emit NDJSON lifecycle events to stdout")
	activateCmd.Flags().Bool("json", false, "Print the aggregated result as JSON")

	viper.BindPFlag("max_parallel", activateCmd.Flags().Lookup("max-parallel"))
	viper.BindPFlag("emit_events", activateCmd.Flags().Lookup("emit-events"))
}

// runActivate parses the request, builds the invoker, and runs the
// coordinator. Malformed JSON or an unknown mode fails here, before any
// agent is activated.
func runActivate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	opts := logger.DefaultOptions()
	if cfg.Debug {
		opts.Level = logger.LevelDebug
	}
	logger.Init(opts)

	modeStr := cfg.DefaultMode
	if cmd.Flags().Changed("mode") {
		modeStr, _ = cmd.Flags().GetString("mode")
	}
	mode, err := coordinator.ParseMode(modeStr)
	if err != nil {
		return err
	}

	baseInput, err := parsePayloadFlag(cmd, "input")
	if err != nil {
		return err
	}

	sharedContext, err := parsePayloadFlag(cmd, "context")
	if err != nil {
		return err
	}
	if sharedContext == nil {
		// Give the run one session identity, the same shape a hosted
		// activation would carry.
		sharedContext = coordinator.Payload{
			"session_id":      uuid.NewString(),
			"multi_agent_cli": true,
		}
	}
	if mode == coordinator.ModeConversation {
		ensureChatContext(sharedContext)
	}

	inv := buildInvoker(cmd, cfg)
	c := coordinator.NewWithOptions(inv, coordinator.Options{
		MaxParallel: cfg.MaxParallel,
	})

	if cfg.EmitEvents {
		events.RunStarted(mode.String(), len(args))
	}

	result, err := c.Run(ctx, coordinator.Request{
		AgentIDs:      args,
		BaseInput:     baseInput,
		SharedContext: sharedContext,
		Mode:          mode,
	})
	if err != nil {
		return fmt.Errorf("activation failed: %w", err)
	}

	if cfg.EmitEvents {
		events.RunCompleted(mode.String(), result.Successful, result.Failed, result.Total)
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		pretty, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		fmt.Println(string(pretty))
		return nil
	}

	printResult(result, mode, sharedContext)
	return nil
}

// parsePayloadFlag decodes a JSON flag value. Returns nil when the flag is
// empty so the caller can tell "absent" from "{}".
func parsePayloadFlag(cmd *cobra.Command, name string) (coordinator.Payload, error) {
	raw, _ := cmd.Flags().GetString(name)
	if raw == "" {
		return nil, nil
	}

	var payload coordinator.Payload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, fmt.Errorf("invalid JSON %s data: %w", name, err)
	}
	return payload, nil
}

// ensureChatContext gives conversation runs a stable chat identity so a
// follow-up run can reuse the same conversation.
func ensureChatContext(sharedContext coordinator.Payload) {
	if _, ok := sharedContext["chat_id"]; !ok {
		if sid, ok := sharedContext["session_id"].(string); ok && sid != "" {
			sharedContext["chat_id"] = sid
		} else {
			sharedContext["chat_id"] = uuid.NewString()
		}
	}
	sharedContext["role"] = "multi_agent_conversation"
}

// buildInvoker constructs the subprocess invoker, optionally wrapped with
// event instrumentation.
func buildInvoker(cmd *cobra.Command, cfg *config.Config) coordinator.Invoker {
	command := cfg.Invoker.Command
	if cmd.Flags().Changed("invoker-command") {
		command, _ = cmd.Flags().GetString("invoker-command")
	}

	sub := invoker.NewCommand(command, cfg.Invoker.Args...)
	sub.WorkDir = cfg.Invoker.WorkDir
	sub.Timeout = cfg.Invoker.Timeout

	if cfg.EmitEvents {
		return invoker.Instrument(sub)
	}
	return sub
}

// printResult renders per-agent outcomes and the run summary.
func printResult(result *coordinator.Result, mode coordinator.Mode, sharedContext coordinator.Payload) {
	fmt.Printf("\n✅ Multi-agent activation completed (%s mode)\n", mode)
	fmt.Println(strings.Repeat("=", 60))

	for i, out := range result.Outcomes {
		turnInfo := ""
		if out.Turn > 0 {
			turnInfo = fmt.Sprintf(" (turn %d)", out.Turn)
		}
		fmt.Printf("\nAgent %d: %s%s\n", i+1, out.AgentID, turnInfo)
		fmt.Println(strings.Repeat("-", 40))

		if out.Status == coordinator.StatusCompleted {
			if len(out.Output) > 0 {
				if pretty, err := json.MarshalIndent(out.Output, "", "  "); err == nil {
					fmt.Println(string(pretty))
				}
			} else {
				fmt.Println("(no output)")
			}
		} else {
			fmt.Fprintf(os.Stderr, "❌ %s\n", out.Error)
		}
	}

	fmt.Printf("\nSummary: %d successful, %d failed out of %d total\n",
		result.Successful, result.Failed, result.Total)

	if chatID, ok := sharedContext["chat_id"]; ok {
		fmt.Printf("Conversation ID: %v\n", chatID)
		fmt.Println("Reuse this chat_id in --context to continue the conversation")
	}
}
