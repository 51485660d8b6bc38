package dev

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/PancyStudios/MaxisGo/pkg/config"
	"github.com/PancyStudios/MaxisGo/pkg/database"
	"github.com/PancyStudios/MaxisGo/pkg/discord"
	"github.com/PancyStudios/MaxisGo/pkg/errors"
	"github.com/PancyStudios/MaxisGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"
)

const (
	evalExportPath = "github.com/PancyStudios/MaxisGo/internal/commands/dev/dev"
	evalImport     = `import . "github.com/PancyStudios/MaxisGo/internal/commands/dev"`
	maxEvalOutput  = 1900
)

// createEvalCommand crea el comando /eval
func (h *handlers) createEvalCommand() *discord.Command {
	return discord.NewCommand(
		"eval",
		"Evalúa código Go con acceso al estado del bot (Peligroso)",
		category,
		h.evalHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "codigo",
			Description: "Código o expresión Go a evaluar",
			Required:    true,
		},
	).AsDev()
}

func (h *handlers) evalHandler(ctx *discord.CommandContext) error {
	if !h.isOwner(ctx) {
		return h.denyAccess(ctx)
	}
	if err := ctx.Defer(); err != nil {
		return err
	}

	go func() {
		defer errors.RecoverMiddleware()()
		start := time.Now()

		output := h.eval(ctx, stripCodeBlock(ctx.GetStringOption("codigo")))
		logger.Debug(fmt.Sprintf("Eval completado en %s", time.Since(start)), "DevEval")

		if err := ctx.EditReply(output); err != nil {
			logger.Error("Error enviando resultado de eval: "+err.Error(), "DevEval")
		}
	}()
	return nil
}

// eval runs code in a fresh interpreter with the bot services in scope
func (h *handlers) eval(ctx *discord.CommandContext, code string) string {
	i := interp.New(interp.Options{})
	if err := i.Use(stdlib.Symbols); err != nil {
		return fmt.Sprintf("❌ Error cargando stdlib: %v", err)
	}

	exports := map[string]reflect.Value{
		"Ctx":     reflect.ValueOf(ctx),
		"Bot":     reflect.ValueOf(ctx.Client),
		"Session": reflect.ValueOf(ctx.Session),
		"DB":      reflect.ValueOf(database.Get()),
		"Config":  reflect.ValueOf(config.Get()),
		"Bank":    reflect.ValueOf(h.Bank),
		"Warns":   reflect.ValueOf(h.Warns),
		"Replies": reflect.ValueOf(h.Replies),
		"Writes":  reflect.ValueOf(h.Writes),
	}
	if err := i.Use(interp.Exports{evalExportPath: exports}); err != nil {
		return fmt.Sprintf("❌ Error registrando variables: %v", err)
	}
	if _, err := i.Eval(evalImport); err != nil {
		return fmt.Sprintf("❌ Error importando variables: %v", err)
	}

	res, err := i.Eval(code)
	if err != nil {
		return fmt.Sprintf("❌ **Error de Ejecución:**\n```go\n%v\n```", err)
	}
	return fmt.Sprintf("✅ **Resultado:**\n```go\n%s\n```", formatResult(res))
}

func stripCodeBlock(code string) string {
	code = strings.TrimSpace(code)
	code = strings.TrimPrefix(code, "```go")
	code = strings.TrimPrefix(code, "```")
	code = strings.TrimSuffix(code, "```")
	return strings.TrimSpace(code)
}

func formatResult(res reflect.Value) string {
	if !res.IsValid() {
		return "nil"
	}
	out := fmt.Sprintf("%#v", res.Interface())
	if len(out) > maxEvalOutput {
		out = out[:maxEvalOutput] + "... (truncado)"
	}
	return out
}
