package underboss

// Version is the published SDK version.
// 0.3.0: Breaking - validators are declarative RuleSets (enumerable via
// ValidationRuleSet) instead of ad hoc functions; first-failure-wins order
// is now part of the contract.
// 0.2.0: Add CreateWithMedia two-phase helper; media upload failures after a
// successful create are reported without rolling back the posting.
const Version = "0.3.0"
