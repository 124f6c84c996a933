package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"jarScope/internal/model"
	"jarScope/internal/registry"
)

type tablesView struct {
	Jars   []model.Jar             `json:"jars"`
	Pools  []model.PoolDescriptor  `json:"pools"`
	Tokens []model.TokenDescriptor `json:"tokens"`
}

func runTables(cmd *cobra.Command, _ []string) error {
	format, _ := cmd.Flags().GetString("format")
	return writeTables(cmd.OutOrStdout(), format)
}

func writeTables(w io.Writer, format string) error {
	view := tablesView{
		Jars:   registry.Jars(),
		Pools:  registry.Pools(),
		Tokens: registry.Tokens(),
	}

	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(view)
	case "text", "":
	default:
		return fmt.Errorf("unknown format %q", format)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "JAR\tNAME\tADDRESS\tDEPOSIT\tACTIVE\tLINK")
	for _, jar := range view.Jars {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%t\t%s\n", jar.Symbol, jar.JarName, jar.Address.Hex(), jar.DepositTokenName, jar.Active, jar.DepositLink)
	}
	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "POOL\tADDRESS\tTOKEN A\tTOKEN B")
	for _, pool := range view.Pools {
		fmt.Fprintf(tw, "%s\t%s\t%s (%d)\t%s (%d)\n", pool.Name, pool.Address.Hex(), pool.TokenA.Symbol, pool.TokenA.Decimals, pool.TokenB.Symbol, pool.TokenB.Decimals)
	}
	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "TOKEN\tADDRESS\tPRICE ID\tDECIMALS")
	for _, token := range view.Tokens {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n", token.Symbol, token.Address.Hex(), token.PriceID, token.Decimals)
	}
	return tw.Flush()
}
