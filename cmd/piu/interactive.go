package main

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/zx06/piu/internal/errors"
)

// pickInstance implements --interactive: list running EC2 instances in a
// region and let the user pick the target plus a reason.
func pickInstance(ctx context.Context, flags *requestFlags, deps *requestDeps) (host, reason string, err error) {
	cons := deps.cons

	region := flags.Region
	for region == "" {
		input, perr := cons.Prompt("AWS region")
		if perr != nil {
			return "", "", errors.Wrap(errors.CodeCfgInvalid, "no AWS region given", nil, perr)
		}
		region = input
	}

	list, xe := deps.lister.List(ctx, region)
	if xe != nil {
		return "", "", xe
	}
	if len(list) == 0 {
		return "", "", errors.New(errors.CodeAWSFailed, "no running instances found", map[string]any{"region": region})
	}

	var buf bytes.Buffer
	tw := tabwriter.NewWriter(&buf, 0, 2, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tNAME\tSTACK\tVERSION\tPRIVATE IP")
	for i, inst := range list {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", i+1, inst.Name, inst.Stack, inst.Version, inst.PrivateIP)
	}
	tw.Flush()
	cons.Println(buf.String())

	var selected int
	for selected == 0 {
		input, perr := cons.Prompt("Choose an instance")
		if perr != nil {
			return "", "", errors.Wrap(errors.CodeCfgInvalid, "no instance chosen", nil, perr)
		}
		n, cerr := strconv.Atoi(input)
		if cerr != nil || n < 1 || n > len(list) {
			cons.Error(fmt.Sprintf("Please enter a number between 1 and %d", len(list)))
			continue
		}
		selected = n
	}

	why, perr := cons.Prompt("Reason")
	if perr != nil {
		return "", "", errors.Wrap(errors.CodeCfgInvalid, "no reason given", nil, perr)
	}

	return list[selected-1].PrivateIP, why, nil
}
