package sweeprun

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// DescribeHost returns the hostname with the CPU model, logical core count
// and installed memory when they can be read.
func DescribeHost(ctx context.Context) string {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}
	var details []string
	if info, err := cpu.InfoWithContext(ctx); err == nil && len(info) > 0 {
		details = append(details, info[0].ModelName)
	}
	if cores, err := cpu.CountsWithContext(ctx, true); err == nil {
		details = append(details, fmt.Sprintf("%d cores", cores))
	}
	if vm, err := mem.VirtualMemoryWithContext(ctx); err == nil {
		details = append(details, fmt.Sprintf("%.1f GiB", float64(vm.Total)/(1<<30)))
	}
	if len(details) == 0 {
		return hostname
	}
	return hostname + " (" + strings.Join(details, ", ") + ")"
}
