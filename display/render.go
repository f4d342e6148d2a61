// Package display renders the game as plain text. It holds no game state: every
// method prints what it is handed.
package display

import (
	"io"
	"war/game"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const separator = "|----|----------------------|------------|--------|\n"

// Renderer writes game text to a single output stream.
type Renderer struct {
	out io.Writer
	p   *message.Printer
}

func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{
		out: out,
		p:   message.NewPrinter(language.BrazilianPortuguese),
	}
}

func (r *Renderer) printf(format string, args ...any) {
	r.p.Fprintf(r.out, format, args...)
}

func (r *Renderer) Welcome(player game.Faction, m game.Mission) {
	r.printf("⚔️ Bem-vindo ao WAR Estruturado! Sua cor é **%s**.\n", player)
	r.printf("🎯 Sua Missão Secreta (ID %d):\n", int(m))
	r.Mission(m)
}

// Mission prints the mission's flavor text, which keeps the full-board numbers.
func (r *Renderer) Mission(m game.Mission) {
	switch m {
	case game.ConquerSouthAmerica:
		r.printf("    -> **Missão 1:** Conquistar 6 territórios do continente Sul-Americano.\n")
	case game.EliminateGreen:
		r.printf("    -> **Missão 2:** Destruir completamente o exército **%s**.\n", game.Green)
	case game.ConquerTerritories:
		r.printf("    -> **Missão 3:** Conquistar e manter 15 territórios de qualquer continente.\n")
	default:
		r.printf("    -> Missão desconhecida.\n")
	}
}

func (r *Renderer) PressEnter(starting bool) {
	if starting {
		r.printf("\n--- Pressione ENTER para iniciar ---\n")
		return
	}
	r.printf("\n--- Pressione ENTER para continuar ---\n")
}

func (r *Renderer) RoundBanner() {
	r.printf("\n" +
		"==============================================\n" +
		"             **NOVA RODADA**\n" +
		"==============================================\n")
}

// Map prints every territory as a table row.
func (r *Renderer) Map(w *game.World) {
	r.printf("\n| ID | %-20s | %-10s | %-6s |\n", "Território", "Dono", "Tropas")
	r.printf(separator)
	for _, t := range w.Territories {
		r.printf("| %-2d | %-20s | %-10s | %-6d |\n", t.ID, t.Name, string(t.Owner), t.Troops)
	}
	r.printf(separator)
}

func (r *Renderer) Menu() {
	r.printf("\n" +
		"--- Menu de Ações ---\n" +
		"1. ⚔️  Atacar Território\n" +
		"2. 🏆  Verificar Condição de Vitória\n" +
		"0. 🚪  Sair do Jogo\n")
}

func (r *Renderer) CommandPrompt() {
	r.printf("➡️ Sua escolha: ")
}

func (r *Renderer) InvalidCommand() {
	r.printf("\n❌ Opção inválida. Tente novamente.\n")
}

func (r *Renderer) AttackPhase() {
	r.printf("\n--- FASE DE ATAQUE ---\n")
}

func (r *Renderer) AttackerPrompt(last int) {
	r.printf("Selecione o ID do seu território **atacante** (0 a %d): ", last)
}

func (r *Renderer) DefenderPrompt(last int) {
	r.printf("Selecione o ID do território **defensor** (0 a %d): ", last)
}

func (r *Renderer) InvalidAttacker(minTroops int, err error) {
	r.printf("🚫 Ataque inválido: Território atacante precisa ser seu e ter pelo menos %d tropas.\n", minTroops)
	r.detail(err)
}

func (r *Renderer) InvalidDefender(err error) {
	r.printf("🚫 Ataque inválido: Território defensor precisa ser inimigo e diferente do atacante.\n")
	r.detail(err)
}

func (r *Renderer) detail(err error) {
	if err != nil {
		r.printf("   (%s)\n", err.Error())
	}
}

func (r *Renderer) BattleStart(attacker, defender game.Territory) {
	r.printf("\n🔥 **INÍCIO DA BATALHA:** %s (%d) VS %s (%d)\n",
		attacker.Name, attacker.Troops, defender.Name, defender.Troops)
}

// BattleResult narrates one exchange. attacker and defender are read after the
// exchange was applied.
func (r *Renderer) BattleResult(attacker, defender game.Territory, result game.AttackResult) {
	r.printf("  🎲 Dados: Atacante %d vs Defensor %d\n", result.AttackerRoll, result.DefenderRoll)
	if result.DefenderLosses > 0 {
		r.printf("  🛡️ O defensor perdeu 1 tropa.\n")
	} else {
		r.printf("  💥 O atacante perdeu 1 tropa.\n")
	}

	r.printf("  🔄 Tropas restantes: %s (%d) | %s (%d)\n",
		attacker.Name, attacker.Troops, defender.Name, defender.Troops)

	switch result.Outcome {
	case game.Conquered:
		r.printf("👑 **CONQUISTA!** O território %s foi tomado por %s!\n", defender.Name, string(defender.Owner))
	case game.AttackHalted:
		r.printf("⚠️ Ataque encerrado: O atacante não tem mais tropas suficientes.\n")
	}
}

func (r *Renderer) VictoryCheck(m game.Mission) {
	r.printf("\n--- VERIFICAÇÃO DE VITÓRIA ---\n")
	switch m {
	case game.ConquerSouthAmerica:
		r.printf("-> Verificando Missão 1: Conquistar 3 territórios da América do Sul.\n")
	case game.EliminateGreen:
		r.printf("-> Verificando Missão 2: Destruir o exército %s.\n", game.Green)
	case game.ConquerTerritories:
		r.printf("-> Verificando Missão 3: Conquistar 6 territórios no total.\n")
	}
}

func (r *Renderer) Victory() {
	r.printf("🎉 **PARABÉNS! VOCÊ CUMPRIU SUA MISSÃO E VENCEU O JOGO!** 🎉\n")
}

func (r *Renderer) NotYet() {
	r.printf("😔 Sua missão ainda não foi cumprida. Continue jogando!\n")
}

func (r *Renderer) Goodbye() {
	r.printf("\n👋 Encerrando o jogo...\n")
}

func (r *Renderer) Released() {
	r.printf("✅ Memória do mapa liberada com sucesso.\n")
}
