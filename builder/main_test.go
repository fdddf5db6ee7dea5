package main

import "testing"

func TestSelectComponents(t *testing.T) {
	all, err := selectComponents(components, "")
	if err != nil || len(all) != len(components) {
		t.Fatalf("vazio deveria selecionar tudo: %v %d", err, len(all))
	}

	got, err := selectComponents(components, " cliente ,")
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if len(got) != 1 || got[0].Name != "cliente" {
		t.Errorf("got %+v", got)
	}

	if _, err := selectComponents(components, "launcher"); err == nil {
		t.Error("componente desconhecido deveria falhar")
	}
}

func TestBinaryPathAndFlags(t *testing.T) {
	c := component{Name: "cliente", Binary: "voxelforge", LDFlags: "-s -w", GUI: true}

	if got := binaryPath("bin/", c, "linux"); got != "bin/voxelforge" {
		t.Errorf("linux: %s", got)
	}
	if got := binaryPath("bin", c, "windows"); got != "bin/voxelforge.exe" {
		t.Errorf("windows: %s", got)
	}
	if got := ldflagsFor(c, "linux"); got != "-s -w" {
		t.Errorf("ldflags linux: %s", got)
	}
	if got := ldflagsFor(c, "windows"); got != "-extldflags=-static -s -w -H=windowsgui" {
		t.Errorf("ldflags windows: %s", got)
	}
}
