package patterns

// Built-in signal pattern tables.  Expressed as data, compiled once by
// NewLibrary, and treated as read-only configuration.  All expressions are
// matched case-insensitively; order within a table is the order signals are
// reported in.

// urgencyPatterns: explicit urgency words, today/tonight phrasing, overdue
// phrasing, short relative-time phrasing, production emergencies, and
// stakeholder-waiting phrasing.
var urgencyPatterns = []string{
	`\burgent(?:ly)?\b`,
	`\basap\b`,
	`\bimmediately\b`,
	`\bright away\b`,
	`\bright now\b`,
	`\bcritical\b`,
	`\bemergency\b`,
	`\bdeadline\b`,
	`\btoday\b`,
	`\btonight\b`,
	`\bby end of (?:the )?day\b`,
	`\beod\b`,
	`\boverdue\b`,
	`\bpast due\b`,
	`\brunning late\b`,
	`\bin (?:an?|\d+) hours?\b`,
	`\bin \d+ minutes?\b`,
	`\bproduction (?:is )?(?:down|broken|on fire)\b`,
	`\bserver(?:s)? (?:is |are )?down\b`,
	`\boutage\b`,
	`\bhotfix\b`,
	`\bclient (?:is )?waiting\b`,
	`\bcustomer (?:is )?waiting\b`,
	`\bboss (?:needs|wants|asked)\b`,
	`\bblocker\b`,
	`\bblocking\b`,
}

// importancePatterns: explicit importance words plus career, health, family,
// financial, legal, and learning phrasing.  Production emergencies appear
// here too; operational incidents are importance-bearing by nature.
var importancePatterns = []string{
	`\bimportant\b`,
	`\bcrucial\b`,
	`\bvital\b`,
	`\bessential\b`,
	`\bsignificant\b`,
	`\bhigh[- ]impact\b`,
	`\bcareer\b`,
	`\bpromotion\b`,
	`\bperformance review\b`,
	`\binterview\b`,
	`\bcertification\b`,
	`\bhealth\b`,
	`\bdoctor\b`,
	`\bdentist\b`,
	`\bmedical\b`,
	`\bfamily\b`,
	`\banniversary\b`,
	`\btax(?:es)?\b`,
	`\bbudget\b`,
	`\bmortgage\b`,
	`\binsurance\b`,
	`\binvestment\b`,
	`\bretirement\b`,
	`\bcontract\b`,
	`\blegal\b`,
	`\bcompliance\b`,
	`\baudit\b`,
	`\btraining\b`,
	`\bstudy(?:ing)?\b`,
	`\blearn(?:ing)?\b`,
	`\bstrateg(?:y|ic)\b`,
	`\bmilestone\b`,
	`\blaunch\b`,
	`\bproduction (?:is )?(?:down|broken|on fire)\b`,
	`\boutage\b`,
}

// delegationPatterns: explicit delegation phrasing, routine cadence words,
// and administrative/logistics phrasing.
var delegationPatterns = []string{
	`\bdelegate\b`,
	`\bassign\b`,
	`\bhand (?:this |it )?off\b`,
	`\bsomeone else\b`,
	`\bcan (?:anyone|anybody|someone|somebody)\b`,
	`\broutine\b`,
	`\brecurring\b`,
	`\bweekly (?:report|sync)\b`,
	`\bstatus report\b`,
	`\bstand-?up\b`,
	`\border (?:office )?supplies\b`,
	`\bprinter ink\b`,
	`\breorder\b`,
	`\brestock\b`,
	`\bbook (?:a )?(?:room|meeting room|conference room)\b`,
	`\bbook (?:a )?(?:flight|hotel|travel)\b`,
	`\bschedule (?:a |the )?meeting\b`,
	`\bfile (?:the )?(?:expenses?|paperwork|documents?)\b`,
	`\bexpense report\b`,
	`\bdata entry\b`,
	`\bprocess invoices\b`,
	`\bphotocopy\b`,
	`\bscan (?:the )?documents?\b`,
	`\bupdate (?:the )?spreadsheet\b`,
	`\bmeeting minutes\b`,
}

// lowPriorityPatterns: hedging words, leisure references, non-essential
// reorganization, and vague wishlist phrasing.
var lowPriorityPatterns = []string{
	`\bmaybe\b`,
	`\bsomeday\b`,
	`\beventually\b`,
	`\bone day\b`,
	`\bat some point\b`,
	`\bif (?:i|we) (?:have|get) (?:the )?time\b`,
	`\bwhen (?:i|we) (?:have|get) (?:a chance|time)\b`,
	`\bno rush\b`,
	`\bno hurry\b`,
	`\bnot urgent\b`,
	`\bwhenever\b`,
	`\bwould be nice\b`,
	`\bnice to have\b`,
	`\bbrowse\b`,
	`\breddit\b`,
	`\byoutube\b`,
	`\bnetflix\b`,
	`\bsocial media\b`,
	`\binstagram\b`,
	`\btwitter\b`,
	`\bvideo games?\b`,
	`\bwatch (?:tv|a movie|series|shows?)\b`,
	`\bbinge\b`,
	`\breorganize\b`,
	`\brearrange\b`,
	`\bdeclutter\b`,
	`\btidy\b`,
	`\bwish ?list\b`,
	`\bfor fun\b`,
}
