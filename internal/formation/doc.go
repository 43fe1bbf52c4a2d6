// Package formation assigns a roster of people into fixed-size groups.
//
// Two strategies are available. Preference formation seeds each group with a
// leader, chains through the leaders' stated preferences, then fills the rest
// in roster order; whole attempts are restarted with a rotated leader pool
// until every group has its expected size and no group holds a pair of people
// who avoid each other. Skill balancing sorts people by total skill and deals
// them, strongest first, into the first group with room. Both strategies are deterministic: "first
// available" always means first in the current pool order.
//
// After either strategy, leftover people are placed greedily and anyone who
// cannot be placed is reported in Result.Unplaced. Groups are then scored per
// skill dimension, optionally floored, and ranked by total score.
package formation
