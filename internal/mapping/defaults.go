// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Poshconv Authors

package mapping

// defaults is the builtin unix-name to PowerShell-template table, used
// whenever no external mapping file is available.
var defaults = map[string]string{
	"ls":      "Get-ChildItem",
	"pwd":     "Get-Location",
	"cd":      "Set-Location",
	"mkdir":   "New-Item -ItemType Directory",
	"rmdir":   "Remove-Item -Recurse",
	"rm":      "Remove-Item",
	"cp":      "Copy-Item",
	"mv":      "Move-Item",
	"cat":     "Get-Content",
	"grep":    "Select-String",
	"find":    "Get-ChildItem -Recurse",
	"ps":      "Get-Process",
	"kill":    "Stop-Process",
	"chmod":   "Set-ItemProperty",
	"which":   "Get-Command",
	"echo":    "Write-Output",
	"env":     "Get-ChildItem Env:",
	"history": "Get-History",
	"clear":   "Clear-Host",
	"head":    "Get-Content | Select-Object -First",
	"tail":    "Get-Content | Select-Object -Last",
	"wc":      "Measure-Object",
	"sort":    "Sort-Object",
	"uniq":    "Get-Unique",
	"df":      "Get-WmiObject -Class Win32_LogicalDisk",
	"du":      "Get-ChildItem | Measure-Object -Property Length -Sum",
	"mount":   "Get-WmiObject -Class Win32_Volume",
	"wget":    "Invoke-WebRequest",
	"curl":    "Invoke-RestMethod",
	"tar":     "Expand-Archive / Compress-Archive",
	"ssh":     "Enter-PSSession",
	"scp":     "Copy-Item -ToSession / Copy-Item -FromSession",
}
