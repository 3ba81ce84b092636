package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidMACAddress(t *testing.T) {
	valid := []string{
		"",
		"00:1A:2B:3C:4D:5E",
		"00-1a-2b-3c-4d-5e",
		"ff:ff:ff:ff:ff:ff",
	}
	for _, v := range valid {
		assert.True(t, IsValidMACAddress(v), "expected valid: %q", v)
	}

	invalid := []string{
		"001A2B3C4D5E",
		"00:1A:2B:3C:4D",
		"00:1A:2B:3C:4D:5E:6F",
		"GG:1A:2B:3C:4D:5E",
		"00.1A.2B.3C.4D.5E",
	}
	for _, v := range invalid {
		assert.False(t, IsValidMACAddress(v), "expected invalid: %q", v)
	}
}

func TestIsValidIPAddress(t *testing.T) {
	assert.True(t, IsValidIPAddress(""))
	assert.True(t, IsValidIPAddress("10.5.1.20"))
	assert.True(t, IsValidIPAddress("fe80::1"))
	assert.False(t, IsValidIPAddress("10.5.1"))
	assert.False(t, IsValidIPAddress("not-an-ip"))
}

func TestIsValidCondition(t *testing.T) {
	for _, c := range DeviceConditions {
		assert.True(t, IsValidCondition(c))
	}
	assert.False(t, IsValidCondition("melted"))
	assert.False(t, IsValidCondition(""))
}

func TestIsTerminalRepairStatus(t *testing.T) {
	assert.True(t, IsTerminalRepairStatus(RepairStatusCompleted))
	assert.True(t, IsTerminalRepairStatus(RepairStatusCancelled))
	assert.False(t, IsTerminalRepairStatus(RepairStatusNew))
	assert.False(t, IsTerminalRepairStatus(RepairStatusAssigned))
	assert.False(t, IsTerminalRepairStatus(RepairStatusInProgress))
}
