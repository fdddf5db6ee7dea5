package main

import (
	"flag"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/samber/lo"
)

// Cores para o terminal (ANSI)
const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorCyan   = "\033[36m"
)

// component é um binário do repositório.
type component struct {
	Name    string
	Dir     string
	Binary  string
	UseCgo  bool
	LDFlags string
	GUI     bool // Sem console no Windows
}

var components = []component{
	{Name: "servidor", Dir: "servidor", Binary: "voxelforge-server", UseCgo: true, LDFlags: "-s -w"},
	{Name: "cliente", Dir: "cliente", Binary: "voxelforge", UseCgo: true, LDFlags: "-s -w", GUI: true},
}

func main() {
	only := flag.String("only", "", "Compilar só estes componentes (separados por vírgula)")
	outDir := flag.String("out", "bin", "Pasta de saída")
	runTests := flag.Bool("test", false, "Rodar os testes dos pacotes compartilhados antes")
	flag.Parse()

	fmt.Println(ColorCyan + "╔══════════════════════════════════════╗" + ColorReset)
	fmt.Println(ColorCyan + "║       VoxelForge Native Builder      ║" + ColorReset)
	fmt.Println(ColorCyan + "╚══════════════════════════════════════╝" + ColorReset)

	start := time.Now()

	selected, err := selectComponents(components, *only)
	if err != nil {
		fatal(err)
	}

	setupEnvironment()

	if *runTests {
		if err := goRun("TESTES", "test", "./shared/...", "./servidor/..."); err != nil {
			fatal(err)
		}
	}

	for i, c := range selected {
		fmt.Printf(ColorYellow+"\n[%d/%d]"+ColorReset, i+1, len(selected))
		if err := buildComponent(c, *outDir, runtime.GOOS); err != nil {
			fatal(err)
		}
	}

	fmt.Printf("\n"+ColorCyan+"Build finalizada com sucesso em %v!"+ColorReset+"\n", time.Since(start).Round(time.Second))
}

// selectComponents filtra a lista pelos nomes em only. Vazio seleciona tudo.
func selectComponents(all []component, only string) ([]component, error) {
	if strings.TrimSpace(only) == "" {
		return all, nil
	}
	names := lo.Map(strings.Split(only, ","), func(s string, _ int) string {
		return strings.TrimSpace(s)
	})
	names = lo.Compact(names)

	for _, n := range names {
		if !lo.ContainsBy(all, func(c component) bool { return c.Name == n }) {
			return nil, fmt.Errorf("componente desconhecido: %q", n)
		}
	}
	return lo.Filter(all, func(c component, _ int) bool {
		return lo.Contains(names, c.Name)
	}), nil
}

// binaryPath monta o caminho do executável para o sistema alvo.
func binaryPath(outDir string, c component, goos string) string {
	name := c.Binary
	if goos == "windows" {
		name += ".exe"
	}
	return strings.TrimSuffix(outDir, "/") + "/" + name
}

// ldflagsFor acrescenta as flags específicas do alvo.
func ldflagsFor(c component, goos string) string {
	flags := c.LDFlags
	if goos == "windows" {
		flags = "-extldflags=-static " + flags
		if c.GUI {
			flags += " -H=windowsgui"
		}
	}
	return flags
}

func setupEnvironment() {
	fmt.Println(ColorYellow + "\n[0] Configurando ambiente de compilação..." + ColorReset)

	// Adicionar MSYS2 ao PATH se estiver no Windows
	if runtime.GOOS == "windows" {
		msysPath := `C:\msys64\mingw64\bin`
		currentPath := os.Getenv("PATH")
		if !strings.Contains(currentPath, msysPath) {
			os.Setenv("PATH", msysPath+";"+currentPath)
			fmt.Printf("  - PATH atualizado: %s adicionado.\n", msysPath)
		}
		os.Setenv("CC", "gcc")
		fmt.Println("  - Compilador C: gcc (MSYS2)")
	}
}

func buildComponent(c component, outDir, goos string) error {
	fmt.Printf(ColorYellow+" Compilando %s..."+ColorReset+"\n", c.Name)

	cgoValue := "0"
	if c.UseCgo {
		cgoValue = "1"
	}
	os.Setenv("CGO_ENABLED", cgoValue)

	output := binaryPath(outDir, c, goos)
	if err := goRun(c.Name, "build", "-ldflags", ldflagsFor(c, goos), "-o", output, "./"+c.Dir); err != nil {
		return err
	}

	fmt.Printf(ColorGreen+"  - %s compilado com sucesso -> %s"+ColorReset+"\n", c.Name, output)
	return nil
}

func goRun(label string, args ...string) error {
	cmd := exec.Command("go", args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("falha em %s: %w", label, err)
	}
	return nil
}

func fatal(err error) {
	fmt.Printf("\n"+ColorRed+"[ERRO FATAL] %v"+ColorReset+"\n", err)
	os.Exit(1)
}
