// Package sysinfo reports host, CPU, memory, and disk statistics and
// inspects running processes.
package sysinfo

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/process"
)

// HostInfo is a snapshot of the machine's identity and uptime.
type HostInfo struct {
	Hostname        string        `json:"hostname"`
	OS              string        `json:"os"`
	Platform        string        `json:"platform"`
	PlatformVersion string        `json:"platform_version"`
	KernelVersion   string        `json:"kernel_version"`
	Uptime          time.Duration `json:"uptime"`
	BootTime        time.Time     `json:"boot_time"`
}

// Host returns identity and uptime details for the local machine.
func Host() (*HostInfo, error) {
	info, err := host.Info()

	if err != nil {
		return nil, err
	}

	return &HostInfo{
		Hostname:        info.Hostname,
		OS:              info.OS,
		Platform:        info.Platform,
		PlatformVersion: info.PlatformVersion,
		KernelVersion:   info.KernelVersion,
		Uptime:          time.Duration(info.Uptime) * time.Second,
		BootTime:        time.Unix(int64(info.BootTime), 0),
	}, nil
}

// CPUInfo describes the processors and their current utilization.
type CPUInfo struct {
	Cores       int     `json:"cores"`
	ModelName   string  `json:"model_name"`
	UsedPercent float64 `json:"used_percent"`
}

// CPU returns core count, model, and overall utilization sampled over the
// given interval (100ms if zero).
func CPU(interval ...time.Duration) (*CPUInfo, error) {
	sample := 100 * time.Millisecond

	if len(interval) > 0 && interval[0] > 0 {
		sample = interval[0]
	}

	cores, err := cpu.Counts(true)

	if err != nil {
		return nil, err
	}

	out := &CPUInfo{
		Cores: cores,
	}

	if infos, err := cpu.Info(); err == nil && len(infos) > 0 {
		out.ModelName = infos[0].ModelName
	}

	if percents, err := cpu.Percent(sample, false); err == nil && len(percents) > 0 {
		out.UsedPercent = percents[0]
	} else if err != nil {
		return nil, err
	}

	return out, nil
}

// MemoryInfo is a snapshot of physical memory usage.
type MemoryInfo struct {
	Total       uint64  `json:"total"`
	Available   uint64  `json:"available"`
	Used        uint64  `json:"used"`
	UsedPercent float64 `json:"used_percent"`
}

// Memory returns current physical memory usage.
func Memory() (*MemoryInfo, error) {
	vm, err := mem.VirtualMemory()

	if err != nil {
		return nil, err
	}

	return &MemoryInfo{
		Total:       vm.Total,
		Available:   vm.Available,
		Used:        vm.Used,
		UsedPercent: vm.UsedPercent,
	}, nil
}

// DiskInfo is a snapshot of usage for one filesystem.
type DiskInfo struct {
	Path        string  `json:"path"`
	Total       uint64  `json:"total"`
	Free        uint64  `json:"free"`
	Used        uint64  `json:"used"`
	UsedPercent float64 `json:"used_percent"`
}

// Disk returns usage for the filesystem containing the given path.
func Disk(path string) (*DiskInfo, error) {
	usage, err := disk.Usage(path)

	if err != nil {
		return nil, err
	}

	return &DiskInfo{
		Path:        usage.Path,
		Total:       usage.Total,
		Free:        usage.Free,
		Used:        usage.Used,
		UsedPercent: usage.UsedPercent,
	}, nil
}

// ProcessInfo describes one running process.
type ProcessInfo struct {
	PID        int32     `json:"pid"`
	Name       string    `json:"name"`
	Executable string    `json:"executable"`
	Cmdline    string    `json:"cmdline"`
	Username   string    `json:"username"`
	Started    time.Time `json:"started"`
	RSS        uint64    `json:"rss"`
}

func describe(proc *process.Process) *ProcessInfo {
	out := &ProcessInfo{
		PID: proc.Pid,
	}

	if v, err := proc.Name(); err == nil {
		out.Name = v
	}

	if v, err := proc.Exe(); err == nil {
		out.Executable = v
	}

	if v, err := proc.Cmdline(); err == nil {
		out.Cmdline = v
	}

	if v, err := proc.Username(); err == nil {
		out.Username = v
	}

	if v, err := proc.CreateTime(); err == nil {
		out.Started = time.UnixMilli(v)
	}

	if v, err := proc.MemoryInfo(); err == nil && v != nil {
		out.RSS = v.RSS
	}

	return out
}

// Processes lists every process visible to the caller.
func Processes() ([]*ProcessInfo, error) {
	procs, err := process.Processes()

	if err != nil {
		return nil, err
	}

	out := make([]*ProcessInfo, 0, len(procs))

	for _, proc := range procs {
		out = append(out, describe(proc))
	}

	return out, nil
}

// FindProcesses returns every process whose name contains the given
// substring (case-insensitive).
func FindProcesses(name string) ([]*ProcessInfo, error) {
	all, err := Processes()

	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(name)
	out := make([]*ProcessInfo, 0)

	for _, proc := range all {
		if strings.Contains(strings.ToLower(proc.Name), needle) {
			out = append(out, proc)
		}
	}

	return out, nil
}

// Process returns details for the process with the given PID.
func Process(pid int32) (*ProcessInfo, error) {
	proc, err := process.NewProcess(pid)

	if err != nil {
		return nil, fmt.Errorf("no such process %d: %v", pid, err)
	}

	return describe(proc), nil
}

// Self returns details for the current process.
func Self() (*ProcessInfo, error) {
	return Process(int32(os.Getpid()))
}
